// seehuhn.de/go/graphview - an interactive function plotting surface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package graphview

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"github.com/google/uuid"
)

// Function is a real function of one real variable.
//
// Functions must be deterministic and free of side effects. Returning NaN
// or an infinity is allowed; such samples are simply not drawn.
type Function func(x float64) float64

// Field identifies an editable property of an [Entry].
type Field int

// These are the properties of an entry which trigger a redraw.
const (
	FieldFunction Field = iota
	FieldColor
)

func (f Field) String() string {
	switch f {
	case FieldFunction:
		return "function"
	case FieldColor:
		return "color"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Entry is one plotted function together with its stroke color.
//
// Entries are compared by identity: two entries with the same function
// and color are still two separate curves.
type Entry struct {
	id    uuid.UUID
	fn    Function
	color color.Color
	owner *Data
}

// NewEntry returns a new entry for fn. If c is nil, the curve is drawn in
// the default color of the view.
func NewEntry(fn Function, c color.Color) *Entry {
	return &Entry{
		id:    uuid.New(),
		fn:    fn,
		color: c,
	}
}

// ID returns a random identifier, used in log messages.
func (e *Entry) ID() uuid.UUID {
	return e.id
}

// Function returns the plotted function.
func (e *Entry) Function() Function {
	return e.fn
}

// SetFunction replaces the plotted function.
// A nil function draws nothing.
func (e *Entry) SetFunction(fn Function) {
	e.fn = fn
	e.changed(FieldFunction)
}

// Color returns the preferred stroke color, or nil if none is set.
func (e *Entry) Color() color.Color {
	return e.color
}

// ColorOr returns the preferred stroke color, or def if none is set.
func (e *Entry) ColorOr(def color.Color) color.Color {
	if e.color == nil {
		return def
	}
	return e.color
}

// SetColor sets the preferred stroke color. Passing nil reverts to the
// default color.
func (e *Entry) SetColor(c color.Color) {
	e.color = c
	e.changed(FieldColor)
}

func (e *Entry) changed(f Field) {
	if e.owner != nil {
		e.owner.notifyChanged(e, f)
	}
}

// Listener receives notifications about changes to a [Data] set.
type Listener interface {
	EntryAdded(e *Entry)
	EntryRemoved(e *Entry)
	EntryChanged(e *Entry, f Field)
}

// Data is an ordered set of entries.
//
// An entry can be part of at most one Data set at a time.
type Data struct {
	entries   []*Entry
	listeners []*listenerSlot
}

type listenerSlot struct {
	l Listener
}

// Errors returned by [Data.Add] and [Data.Remove].
var (
	ErrEntryOwned   = errors.New("entry already belongs to a data set")
	ErrUnknownEntry = errors.New("entry not in data set")
)

// NewData returns a data set containing the given entries.
func NewData(entries ...*Entry) (*Data, error) {
	d := &Data{}
	for _, e := range entries {
		if err := d.Add(e); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Add appends e to the data set and notifies the listeners.
func (d *Data) Add(e *Entry) error {
	if e.owner != nil {
		return fmt.Errorf("adding entry %s: %w", e.id, ErrEntryOwned)
	}
	e.owner = d
	d.entries = append(d.entries, e)
	for _, s := range slices.Clone(d.listeners) {
		s.l.EntryAdded(e)
	}
	return nil
}

// Remove removes e from the data set and notifies the listeners.
func (d *Data) Remove(e *Entry) error {
	idx := slices.Index(d.entries, e)
	if idx < 0 {
		return fmt.Errorf("removing entry %s: %w", e.id, ErrUnknownEntry)
	}
	d.entries = slices.Delete(d.entries, idx, idx+1)
	e.owner = nil
	for _, s := range slices.Clone(d.listeners) {
		s.l.EntryRemoved(e)
	}
	return nil
}

// Entries returns the entries in the order they were added.
func (d *Data) Entries() []*Entry {
	return slices.Clone(d.entries)
}

// Len returns the number of entries. A nil data set has no entries.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Listen registers l for notifications. The returned function removes
// the registration again.
func (d *Data) Listen(l Listener) (cancel func()) {
	s := &listenerSlot{l: l}
	d.listeners = append(d.listeners, s)
	return func() {
		d.listeners = slices.DeleteFunc(d.listeners, func(x *listenerSlot) bool {
			return x == s
		})
	}
}

func (d *Data) notifyChanged(e *Entry, f Field) {
	for _, s := range slices.Clone(d.listeners) {
		s.l.EntryChanged(e, f)
	}
}

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
	"fmt"
	"slices"
)

// Registry binds entries to surfaces and keeps the surfaces up to date.
//
// Every tracked entry owns exactly one surface, obtained from the pool.
// The registry also maintains the compositing order: entries added later
// are drawn on top of earlier ones. Registry implements [Listener], so it
// can be attached directly to a [Data] set.
type Registry struct {
	pool     *SurfacePool
	renderer *Renderer
	host     Host

	surfaces map[*Entry]*Surface
	layers   []*Entry // back to front
}

var _ Listener = (*Registry)(nil)

// NewRegistry returns an empty registry. Surfaces are taken from pool,
// drawn by renderer and shown on host.
func NewRegistry(pool *SurfacePool, renderer *Renderer, host Host) *Registry {
	return &Registry{
		pool:     pool,
		renderer: renderer,
		host:     host,
		surfaces: make(map[*Entry]*Surface),
	}
}

// EntryAdded starts tracking e. The entry gets a fresh surface on top of
// all existing ones and is drawn immediately.
func (r *Registry) EntryAdded(e *Entry) {
	if _, dup := r.surfaces[e]; dup {
		panic(fmt.Sprintf("graphview: entry %s registered twice", e.id))
	}
	s := r.pool.Acquire(r.host.Size())
	r.layers = append(r.layers, e)
	r.host.AddSurface(s)
	r.surfaces[e] = s
	r.renderer.Render(e, s)
}

// EntryRemoved stops tracking e and returns its surface to the pool.
//
// Removing an entry which is not tracked is a programming error and
// causes a panic.
func (r *Registry) EntryRemoved(e *Entry) {
	s, ok := r.surfaces[e]
	if !ok {
		panic(fmt.Sprintf("graphview: entry %s has no surface", e.id))
	}
	if idx := slices.Index(r.layers, e); idx >= 0 {
		r.layers = slices.Delete(r.layers, idx, idx+1)
	}
	r.host.RemoveSurface(s)
	delete(r.surfaces, e)
	r.pool.Release(s)
}

// EntryChanged redraws the surface of e in place. Pool membership and
// compositing order are not affected.
func (r *Registry) EntryChanged(e *Entry, f Field) {
	s, ok := r.surfaces[e]
	if !ok {
		panic(fmt.Sprintf("graphview: cannot redraw %s of unregistered entry %s", f, e.id))
	}
	s.Clear()
	r.renderer.Render(e, s)
}

// PurgeAll stops tracking all entries.
func (r *Registry) PurgeAll() {
	for i := len(r.layers) - 1; i >= 0; i-- {
		r.EntryRemoved(r.layers[i])
	}
}

// Remap resizes every surface to the current host size and redraws all
// entries. All surfaces are up to date when Remap returns.
func (r *Registry) Remap() {
	w, h := r.host.Size()
	for _, e := range r.layers {
		s := r.surfaces[e]
		s.Resize(w, h)
		s.Clear()
		r.renderer.Render(e, s)
	}
}

// Len returns the number of tracked entries.
func (r *Registry) Len() int {
	return len(r.layers)
}

// Surface returns the surface bound to e, or nil if e is not tracked.
func (r *Registry) Surface(e *Entry) *Surface {
	return r.surfaces[e]
}

// Entries returns the tracked entries, back to front.
func (r *Registry) Entries() []*Entry {
	return slices.Clone(r.layers)
}

// Order returns the surfaces of all tracked entries, back to front.
func (r *Registry) Order() []*Surface {
	res := make([]*Surface, len(r.layers))
	for i, e := range r.layers {
		res[i] = r.surfaces[e]
	}
	return res
}

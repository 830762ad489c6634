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

// Package observe implements a small publish-subscribe channel for named
// scalar inputs.
//
// Updates are grouped into batches. Subscribers register interest in a
// [Group] of input names and are notified at most once per batch, after
// all updates of the batch have been committed. This way a subscriber
// never observes a half-updated set of inputs.
package observe

import (
	"math"
	"slices"
)

// Group is an immutable set of input names.
type Group struct {
	names []string // sorted, without duplicates
}

// NewGroup returns the group containing the given names.
func NewGroup(names ...string) Group {
	ns := slices.Clone(names)
	slices.Sort(ns)
	return Group{names: slices.Compact(ns)}
}

// Union returns the group containing the names of all given groups.
func Union(groups ...Group) Group {
	var all []string
	for _, g := range groups {
		all = append(all, g.names...)
	}
	return NewGroup(all...)
}

// Names returns the names in the group, in sorted order.
func (g Group) Names() []string {
	return slices.Clone(g.names)
}

// Has reports whether name is part of the group.
func (g Group) Has(name string) bool {
	_, found := slices.BinarySearch(g.names, name)
	return found
}

// Bus holds the current values of all inputs and delivers change
// notifications to the subscribers.
//
// A Bus is not safe for concurrent use.
type Bus struct {
	values     map[string]float64
	subs       []*Subscription
	depth      int      // nesting level of Batch calls
	pending    []string // inputs changed in the current batch
	delivering bool
}

// NewBus returns a bus without inputs or subscribers.
func NewBus() *Bus {
	return &Bus{values: make(map[string]float64)}
}

// Get returns the current value of the named input.
// Inputs which have never been set have value 0.
func (b *Bus) Get(name string) float64 {
	return b.values[name]
}

// Set changes a single input. Outside of Batch this forms a batch of
// its own, and subscribers are notified before Set returns.
func (b *Bus) Set(name string, value float64) {
	b.Batch(func() {
		old, ok := b.values[name]
		if ok && (old == value || math.IsNaN(old) && math.IsNaN(value)) {
			return
		}
		b.values[name] = value
		if !slices.Contains(b.pending, name) {
			b.pending = append(b.pending, name)
		}
	})
}

// Batch runs fn and commits all updates made by fn as one batch.
// Calls to Batch may be nested; notifications are sent when the
// outermost call returns.
//
// If fn panics, the updates made so far stay pending and are delivered
// with the next batch.
func (b *Bus) Batch(fn func()) {
	b.depth++
	func() {
		defer func() { b.depth-- }()
		fn()
	}()
	if b.depth == 0 {
		b.flush()
	}
}

// flush notifies the subscribers about all pending changes. Updates made
// by subscribers form a new batch, which is delivered once the current
// one is complete.
func (b *Bus) flush() {
	if b.delivering {
		return
	}
	b.delivering = true
	defer func() { b.delivering = false }()

	for len(b.pending) > 0 {
		changed := b.pending
		b.pending = nil
		for _, s := range slices.Clone(b.subs) {
			if s.bus == nil {
				continue // cancelled during this delivery
			}
			var hit []string
			for _, name := range changed {
				if s.group.Has(name) {
					hit = append(hit, name)
				}
			}
			if len(hit) > 0 {
				s.fn(hit)
			}
		}
	}
}

// Subscribe registers fn to be called after every batch which changed at
// least one input in g. The argument of fn lists the changed inputs of g
// in the order they were first changed. Subscribers are called in the
// order they subscribed.
func (b *Bus) Subscribe(g Group, fn func(changed []string)) *Subscription {
	s := &Subscription{bus: b, group: g, fn: fn}
	b.subs = append(b.subs, s)
	return s
}

// Subscribers returns the number of active subscriptions.
func (b *Bus) Subscribers() int {
	return len(b.subs)
}

// Subscription represents the registration of a callback with a [Bus].
type Subscription struct {
	bus   *Bus
	group Group
	fn    func(changed []string)
}

// Cancel removes the subscription. No notifications are delivered after
// Cancel returns, not even for the batch currently being delivered.
//
// Cancelling a subscription twice is a programming error and causes a
// panic.
func (s *Subscription) Cancel() {
	if s.bus == nil {
		panic("observe: subscription cancelled twice")
	}
	b := s.bus
	b.subs = slices.DeleteFunc(b.subs, func(x *Subscription) bool { return x == s })
	s.bus = nil
}

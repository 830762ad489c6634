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

import "seehuhn.de/go/graphview/observe"

// Names of the inputs on the bus of a View.
const (
	inLeft   = "left"
	inRight  = "right"
	inBottom = "bottom"
	inTop    = "top"
	inWidth  = "width"
	inHeight = "height"
)

var (
	orthoGroup      = observe.NewGroup(inLeft, inRight, inBottom, inTop)
	dimensionsGroup = observe.NewGroup(inWidth, inHeight)
	projectionGroup = observe.Union(orthoGroup, dimensionsGroup)
)

// remapper keeps the projector and all surfaces in sync with the window
// and the panel size. A batch touching both groups results in a single
// remap pass.
type remapper struct {
	bus  *observe.Bus
	proj *Projector
	reg  *Registry
	sub  *observe.Subscription
}

func newRemapper(bus *observe.Bus, proj *Projector, reg *Registry) *remapper {
	m := &remapper{bus: bus, proj: proj, reg: reg}
	m.recompute()
	m.sub = bus.Subscribe(projectionGroup, m.remap)
	return m
}

func (m *remapper) recompute() {
	b := m.bus
	m.proj.Recompute(int(b.Get(inWidth)), int(b.Get(inHeight)),
		b.Get(inLeft), b.Get(inRight), b.Get(inBottom), b.Get(inTop))
}

func (m *remapper) remap(changed []string) {
	m.recompute()
	Logger().Debug("graphview: remap",
		"changed", changed, "entries", m.reg.Len())
	m.reg.Remap()
}

func (m *remapper) stop() {
	m.sub.Cancel()
}

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
	"seehuhn.de/go/graphview/observe"
)

// View keeps the curves of a [Data] set rendered on a [Host].
//
// Every change of the window, of the host size, or of the data set is
// reflected on the host's surfaces before the call which caused the
// change returns. A View is not safe for concurrent use; all calls,
// including the host's resize notifications and data set changes, must
// happen on the same goroutine.
type View struct {
	bus   *observe.Bus
	proj  *Projector
	host  Host
	pool  *SurfacePool
	reg   *Registry
	remap *remapper

	data       *Data
	stopData   func()
	stopResize func()
}

// New creates a view showing the entries of data on host.
// The data set may be nil; see [View.SetData].
func New(host Host, data *Data, opts *Options) *View {
	win := DefaultBounds
	if opts != nil && opts.Window != nil {
		win = *opts.Window
	}

	bus := observe.NewBus()
	width, height := host.Size()
	bus.Batch(func() {
		bus.Set(inLeft, win.Left)
		bus.Set(inRight, win.Right)
		bus.Set(inBottom, win.Bottom)
		bus.Set(inTop, win.Top)
		bus.Set(inWidth, float64(width))
		bus.Set(inHeight, float64(height))
	})

	proj := NewProjector()
	pool := &SurfacePool{}
	reg := NewRegistry(pool, NewRenderer(proj, opts), host)
	v := &View{
		bus:   bus,
		proj:  proj,
		host:  host,
		pool:  pool,
		reg:   reg,
		remap: newRemapper(bus, proj, reg),
	}
	v.stopResize = host.OnResize(v.resized)
	if data != nil {
		v.attach(data)
	}
	return v
}

func (v *View) resized(width, height int) {
	v.bus.Batch(func() {
		v.bus.Set(inWidth, float64(width))
		v.bus.Set(inHeight, float64(height))
	})
}

// Left returns the window coordinate shown at the left edge.
func (v *View) Left() float64 { return v.bus.Get(inLeft) }

// Right returns the window coordinate shown at the right edge.
func (v *View) Right() float64 { return v.bus.Get(inRight) }

// Bottom returns the window coordinate shown at the bottom edge.
func (v *View) Bottom() float64 { return v.bus.Get(inBottom) }

// Top returns the window coordinate shown at the top edge.
func (v *View) Top() float64 { return v.bus.Get(inTop) }

// SetLeft changes the left edge of the window and redraws all curves.
func (v *View) SetLeft(x float64) { v.bus.Set(inLeft, x) }

// SetRight changes the right edge of the window and redraws all curves.
func (v *View) SetRight(x float64) { v.bus.Set(inRight, x) }

// SetBottom changes the bottom edge of the window and redraws all curves.
func (v *View) SetBottom(y float64) { v.bus.Set(inBottom, y) }

// SetTop changes the top edge of the window and redraws all curves.
func (v *View) SetTop(y float64) { v.bus.Set(inTop, y) }

// Bounds returns the current window.
func (v *View) Bounds() Bounds {
	return Bounds{
		Left:   v.Left(),
		Right:  v.Right(),
		Bottom: v.Bottom(),
		Top:    v.Top(),
	}
}

// SetBounds changes all four window edges at once.
// The curves are redrawn only once.
func (v *View) SetBounds(b Bounds) {
	v.bus.Batch(func() {
		v.bus.Set(inLeft, b.Left)
		v.bus.Set(inRight, b.Right)
		v.bus.Set(inBottom, b.Bottom)
		v.bus.Set(inTop, b.Top)
	})
}

// Pan shifts the window by dx and dy, measured in window coordinates.
func (v *View) Pan(dx, dy float64) {
	b := v.Bounds()
	v.SetBounds(Bounds{
		Left:   b.Left + dx,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
		Top:    b.Top + dy,
	})
}

// Zoom scales the window around the window point (cx, cy).
// Factors greater than one zoom in, factors between zero and one
// zoom out.
func (v *View) Zoom(factor, cx, cy float64) {
	b := v.Bounds()
	v.SetBounds(Bounds{
		Left:   cx + (b.Left-cx)/factor,
		Right:  cx + (b.Right-cx)/factor,
		Bottom: cy + (b.Bottom-cy)/factor,
		Top:    cy + (b.Top-cy)/factor,
	})
}

// ProjectX maps a window x coordinate to a pixel column.
func (v *View) ProjectX(x float64) float64 { return v.proj.ProjectX(x) }

// ProjectY maps a window y coordinate to a pixel row.
func (v *View) ProjectY(y float64) float64 { return v.proj.ProjectY(y) }

// UnprojectX maps a pixel column to a window x coordinate.
func (v *View) UnprojectX(q float64) float64 { return v.proj.UnprojectX(q) }

// UnprojectY maps a pixel row to a window y coordinate.
func (v *View) UnprojectY(q float64) float64 { return v.proj.UnprojectY(q) }

// Projector gives read access to the current transformation.
func (v *View) Projector() *Projector {
	return v.proj
}

// Data returns the data set shown by the view, or nil.
func (v *View) Data() *Data {
	return v.data
}

// Registry returns the registry which binds the entries to surfaces.
func (v *View) Registry() *Registry {
	return v.reg
}

// Pool returns the pool holding the idle surfaces.
func (v *View) Pool() *SurfacePool {
	return v.pool
}

// SetData replaces the data set shown by the view. All surfaces of the
// old data set are returned to the pool before the entries of the new
// set are drawn. The argument may be nil.
func (v *View) SetData(data *Data) {
	if data == v.data {
		return
	}
	Logger().Debug("graphview: data set replaced",
		"old", v.data.Len(), "new", data.Len())
	v.detach()
	if data != nil {
		v.attach(data)
	}
}

func (v *View) attach(data *Data) {
	v.data = data
	v.stopData = data.Listen(v.reg)
	for _, e := range data.Entries() {
		v.reg.EntryAdded(e)
	}
}

func (v *View) detach() {
	if v.data == nil {
		return
	}
	v.stopData()
	v.reg.PurgeAll()
	v.data = nil
	v.stopData = nil
}

// Dispose releases all surfaces and removes every listener the view
// installed on the bus, the host and the data set.
//
// The view must not be used after Dispose. Calling Dispose twice is a
// programming error.
func (v *View) Dispose() {
	v.remap.stop()
	v.stopResize()
	v.detach()
	v.pool.Close()
	Logger().Debug("graphview: view disposed")
}

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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter wraps fn and counts its evaluations. Every render of an entry
// evaluates the function once per pixel column.
type counter struct {
	fn    Function
	calls int
}

func (c *counter) eval(x float64) float64 {
	c.calls++
	return c.fn(x)
}

func newTestView(t *testing.T, width, height int, entries ...*Entry) (*View, *Panel, *Data) {
	t.Helper()
	panel := NewPanel(width, height)
	data, err := NewData(entries...)
	require.NoError(t, err)
	return New(panel, data, nil), panel, data
}

func TestViewInitial(t *testing.T) {
	a := NewEntry(constant(0.5), nil)
	b := NewEntry(constant(-0.5), nil)
	v, panel, _ := newTestView(t, 60, 40, a, b)

	assert.Equal(t, DefaultBounds, v.Bounds())
	assert.Equal(t, 2, v.Registry().Len())
	assert.Equal(t, v.Registry().Order(), panel.Surfaces())
	assert.Equal(t, 30.0, v.ProjectX(0))
	assert.Equal(t, 20.0, v.ProjectY(0))
	assert.Equal(t, 0.0, v.UnprojectX(30))
	assert.Equal(t, 1.0, v.UnprojectY(0))
}

func TestViewOptions(t *testing.T) {
	win := Bounds{Left: 0, Right: 10, Bottom: -5, Top: 5}
	v := New(NewPanel(100, 100), nil, &Options{Window: &win})
	assert.Equal(t, win, v.Bounds())
	assert.Equal(t, 0.0, v.ProjectX(0))
	assert.Equal(t, 100.0, v.ProjectX(10))
	assert.Nil(t, v.Data())
}

func TestViewSetBound(t *testing.T) {
	c := &counter{fn: constant(0)}
	v, _, _ := newTestView(t, 50, 50, NewEntry(c.eval, nil))
	require.Equal(t, 50, c.calls)

	c.calls = 0
	v.SetLeft(0)
	assert.Equal(t, 50, c.calls, "one remap per committed bound")
	assert.Equal(t, 0.0, v.Left())
	assert.Equal(t, 0.0, v.ProjectX(0))
	assert.Equal(t, 50.0, v.ProjectX(1))

	c.calls = 0
	v.SetRight(2)
	v.SetBottom(-2)
	v.SetTop(2)
	assert.Equal(t, 150, c.calls)
	assert.Equal(t, Bounds{Left: 0, Right: 2, Bottom: -2, Top: 2}, v.Bounds())

	// setting an unchanged value does not trigger a remap
	c.calls = 0
	v.SetTop(2)
	assert.Zero(t, c.calls)
}

func TestViewSetBoundsBatch(t *testing.T) {
	c := &counter{fn: constant(0)}
	v, _, _ := newTestView(t, 50, 50, NewEntry(c.eval, nil))

	c.calls = 0
	v.SetBounds(Bounds{Left: -10, Right: 10, Bottom: -3, Top: 7})
	assert.Equal(t, 50, c.calls)

	mx, kx, my, ky := v.Projector().Coefficients()
	assert.Equal(t, 2.5, mx)
	assert.Equal(t, 25.0, kx)
	assert.Equal(t, -5.0, my)
	assert.Equal(t, 35.0, ky)
}

func TestViewResize(t *testing.T) {
	c := &counter{fn: constant(0.5)}
	e := NewEntry(c.eval, nil)
	v, panel, _ := newTestView(t, 50, 50, e)

	c.calls = 0
	panel.Resize(80, 20)
	assert.Equal(t, 80, c.calls, "width and height change together")

	w, h := v.Projector().Viewport()
	assert.Equal(t, 80, w)
	assert.Equal(t, 20, h)

	s := v.Registry().Surface(e)
	sw, sh := s.Size()
	assert.Equal(t, 80, sw)
	assert.Equal(t, 20, sh)
	assert.NotZero(t, s.Image().RGBAAt(40, 5).A)
}

func TestViewDataEvents(t *testing.T) {
	a := NewEntry(constant(0.5), nil)
	v, panel, data := newTestView(t, 40, 40, a)
	pool := v.Pool()

	b := NewEntry(constant(-0.5), nil)
	require.NoError(t, data.Add(b))
	assert.Equal(t, []*Surface{v.Registry().Surface(a), v.Registry().Surface(b)}, panel.Surfaces())

	sb := v.Registry().Surface(b)
	require.NoError(t, data.Remove(b))
	assert.Nil(t, v.Registry().Surface(b))
	assert.Equal(t, 1, pool.Idle())

	// edits redraw in place
	allocated := pool.Allocated()
	sa := v.Registry().Surface(a)
	a.SetFunction(constant(-0.5))
	assert.Zero(t, sa.Image().RGBAAt(20, 10).A)
	assert.NotZero(t, sa.Image().RGBAAt(20, 30).A)
	a.SetColor(nil)
	assert.Equal(t, allocated, pool.Allocated())
	assert.Equal(t, 1, pool.Idle())

	// re-adding reuses the released surface
	require.NoError(t, data.Add(b))
	assert.Same(t, sb, v.Registry().Surface(b))
	assert.Equal(t, 0, pool.Idle())
}

func TestViewSetData(t *testing.T) {
	v, panel, old := newTestView(t, 30, 30,
		NewEntry(constant(0), nil),
		NewEntry(constant(0.2), nil),
		NewEntry(constant(0.4), nil))
	pool := v.Pool()
	require.Equal(t, 3, pool.Allocated())

	e := NewEntry(constant(-0.3), nil)
	next, err := NewData(e)
	require.NoError(t, err)

	v.SetData(next)
	assert.Same(t, next, v.Data())
	assert.Equal(t, 1, v.Registry().Len())
	assert.Equal(t, 3, pool.Allocated(), "surfaces of the old data set are reused")
	assert.Equal(t, 2, pool.Idle())
	assert.Len(t, panel.Surfaces(), 1)

	// the old data set is no longer observed
	require.NoError(t, old.Add(NewEntry(constant(0), nil)))
	assert.Equal(t, 1, v.Registry().Len())

	v.SetData(nil)
	assert.Nil(t, v.Data())
	assert.Equal(t, 0, v.Registry().Len())
	assert.Equal(t, 3, pool.Idle())
}

func TestViewPanZoom(t *testing.T) {
	v, _, _ := newTestView(t, 10, 10)
	v.Pan(1, -2)
	assert.Equal(t, Bounds{Left: 0, Right: 2, Bottom: -3, Top: -1}, v.Bounds())

	v.SetBounds(Bounds{Left: -4, Right: 4, Bottom: -2, Top: 2})
	v.Zoom(2, 0, 0)
	assert.Equal(t, Bounds{Left: -2, Right: 2, Bottom: -1, Top: 1}, v.Bounds())

	v.Zoom(0.5, 2, 1)
	assert.Equal(t, Bounds{Left: -6, Right: 2, Bottom: -3, Top: 1}, v.Bounds())
}

func TestViewDegenerateBounds(t *testing.T) {
	e := NewEntry(math.Sin, nil)
	v, _, _ := newTestView(t, 40, 40, e)

	require.NotPanics(t, func() {
		v.SetBounds(Bounds{Left: 1, Right: 1, Bottom: -1, Top: 1})
	})
	assert.True(t, isBlank(v.Registry().Surface(e)))

	require.NotPanics(t, func() {
		v.SetBounds(Bounds{Left: -1, Right: 1, Bottom: 0, Top: 0})
	})
	assert.True(t, isBlank(v.Registry().Surface(e)))
}

func TestViewDispose(t *testing.T) {
	v, panel, data := newTestView(t, 20, 20,
		NewEntry(constant(0), nil),
		NewEntry(constant(0.5), nil))

	v.Dispose()
	assert.Empty(t, panel.Surfaces())
	assert.Equal(t, 0, v.Registry().Len())
	assert.Equal(t, 0, v.Pool().Idle())
	assert.Equal(t, 0, v.Pool().Allocated())

	// no listeners are left behind
	assert.NotPanics(t, func() {
		panel.Resize(30, 30)
		require.NoError(t, data.Add(NewEntry(constant(0), nil)))
		data.Entries()[0].SetColor(nil)
	})
	assert.Equal(t, 0, v.Registry().Len())

	assert.Panics(t, v.Dispose)
}

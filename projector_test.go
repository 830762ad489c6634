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
)

func TestProjectorCoefficients(t *testing.T) {
	p := NewProjector()
	p.Recompute(200, 200, -1, 1, -1, 1)

	mx, kx, my, ky := p.Coefficients()
	assert.Equal(t, 100.0, mx)
	assert.Equal(t, 100.0, kx)
	assert.Equal(t, -100.0, my)
	assert.Equal(t, 100.0, ky)

	assert.Equal(t, 0.0, p.ProjectX(-1))
	assert.Equal(t, 200.0, p.ProjectX(1))
	assert.Equal(t, 100.0, p.ProjectX(0))

	// the window top is at pixel row 0
	assert.Equal(t, 0.0, p.ProjectY(1))
	assert.Equal(t, 200.0, p.ProjectY(-1))
}

func TestProjectorRoundTrip(t *testing.T) {
	windows := []Bounds{
		{Left: -1, Right: 1, Bottom: -1, Top: 1},
		{Left: 0, Right: 1e-6, Bottom: 1e6, Top: 2e6},
		{Left: 3, Right: -7, Bottom: 5, Top: -5}, // mirrored
		{Left: -1e9, Right: 1e9, Bottom: -0.5, Top: 0.25},
	}
	points := []float64{-3, -1, 0, 0.125, 1, 42, 1e5}

	p := NewProjector()
	for _, w := range windows {
		p.Recompute(640, 480, w.Left, w.Right, w.Bottom, w.Top)
		for _, x := range points {
			tol := 1e-9 * max(1, math.Abs(x), math.Abs(w.Left), math.Abs(w.Right))
			assert.InDelta(t, x, p.UnprojectX(p.ProjectX(x)), tol, "x=%g window=%v", x, w)
		}
		for _, y := range points {
			tol := 1e-9 * max(1, math.Abs(y), math.Abs(w.Bottom), math.Abs(w.Top))
			assert.InDelta(t, y, p.UnprojectY(p.ProjectY(y)), tol, "y=%g window=%v", y, w)
		}
	}
}

func TestProjectorDegenerate(t *testing.T) {
	isFinite := func(x float64) bool {
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	}
	p := NewProjector()

	assert.NotPanics(t, func() {
		p.Recompute(100, 100, 2, 2, -1, 1)
	})
	mx, _, _, _ := p.Coefficients()
	assert.False(t, isFinite(mx))
	assert.False(t, isFinite(p.ProjectX(0.5)))
	assert.True(t, isFinite(p.ProjectY(0.5)))

	p.Recompute(100, 100, -1, 1, 3, 3)
	_, _, my, _ := p.Coefficients()
	assert.False(t, isFinite(my))
	assert.False(t, isFinite(p.ProjectY(0.5)))

	// an empty viewport collapses every point onto column 0
	p.Recompute(0, 0, -1, 1, -1, 1)
	assert.Equal(t, 0.0, p.ProjectX(0.5))
	assert.False(t, isFinite(p.UnprojectX(10)))
}

func TestProjectorIdempotent(t *testing.T) {
	p := NewProjector()
	p.Recompute(300, 200, -2, 5, -1, 3)
	m1 := p.Matrix()
	p.Recompute(300, 200, -2, 5, -1, 3)
	assert.Equal(t, m1, p.Matrix())

	w, h := p.Viewport()
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
	assert.Equal(t, Bounds{Left: -2, Right: 5, Bottom: -1, Top: 3}, p.Window())
}

func TestProjectorMatrix(t *testing.T) {
	p := NewProjector()
	p.Recompute(300, 200, -2, 5, -1, 3)
	m := p.Matrix()
	x, y := 1.5, -0.25
	assert.InDelta(t, p.ProjectX(x), m[0]*x+m[2]*y+m[4], 1e-12)
	assert.InDelta(t, p.ProjectY(y), m[1]*x+m[3]*y+m[5], 1e-12)
}

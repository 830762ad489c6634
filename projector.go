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

import "seehuhn.de/go/geom/matrix"

// Bounds describes the visible rectangle in window space.
//
// No ordering is required: Left may exceed Right, and Bottom may exceed
// Top, in which case the plot appears mirrored. Degenerate bounds
// (Left == Right or Bottom == Top) are accepted and lead to an empty plot.
type Bounds struct {
	Left, Right, Bottom, Top float64
}

// DefaultBounds is the window used by a new [View].
var DefaultBounds = Bounds{Left: -1, Right: 1, Bottom: -1, Top: 1}

// Projector maps between window space and viewport space.
//
// Viewport space is the pixel rectangle [0, width] × [0, height], with
// the origin in the top-left corner. Window space is the rectangle
// [left, right] × [bottom, top]. The window top maps to pixel row 0 and
// the window bottom maps to row height.
//
// The zero value is not usable; call [NewProjector].
type Projector struct {
	// m holds the transformation {Mx, 0, 0, My, Kx, Ky}.
	m matrix.Matrix

	window        Bounds
	width, height int
}

// NewProjector returns a Projector with the identity transformation.
func NewProjector() *Projector {
	return &Projector{m: matrix.Identity}
}

// Recompute replaces the transformation by the one mapping the given
// window onto a width×height viewport.
//
// The inputs are not validated. If right == left, bottom == top, or one
// of the pixel dimensions is zero, some coefficients become infinite or
// NaN and the corresponding projections are non-finite.
func (p *Projector) Recompute(width, height int, left, right, bottom, top float64) {
	mx := float64(width) / (right - left)
	kx := -mx * left
	my := float64(height) / (bottom - top)
	ky := -my * top

	p.m = matrix.Matrix{mx, 0, 0, my, kx, ky}
	p.window = Bounds{Left: left, Right: right, Bottom: bottom, Top: top}
	p.width = width
	p.height = height
}

// ProjectX maps a window space x coordinate to viewport space.
func (p *Projector) ProjectX(x float64) float64 {
	return p.m[0]*x + p.m[4]
}

// ProjectY maps a window space y coordinate to viewport space.
func (p *Projector) ProjectY(y float64) float64 {
	return p.m[3]*y + p.m[5]
}

// UnprojectX maps a viewport space x coordinate back to window space.
func (p *Projector) UnprojectX(q float64) float64 {
	return (q - p.m[4]) / p.m[0]
}

// UnprojectY maps a viewport space y coordinate back to window space.
func (p *Projector) UnprojectY(q float64) float64 {
	return (q - p.m[5]) / p.m[3]
}

// Coefficients returns the scale and offset for both axes.
func (p *Projector) Coefficients() (mx, kx, my, ky float64) {
	return p.m[0], p.m[4], p.m[3], p.m[5]
}

// Matrix returns the transformation from window space to viewport space.
func (p *Projector) Matrix() matrix.Matrix {
	return p.m
}

// Window returns the window used by the last call to Recompute.
func (p *Projector) Window() Bounds {
	return p.window
}

// Viewport returns the pixel size used by the last call to Recompute.
func (p *Projector) Viewport() (width, height int) {
	return p.width, p.height
}

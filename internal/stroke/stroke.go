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

// Package stroke draws wide line segments into RGBA images.
//
// The stroker builds a closed outline for every segment and hands all
// outlines of one polyline to a [vector.Rasterizer] as a single compound
// path. All outlines share the same orientation, so overlapping segments
// accumulate coverage instead of cancelling each other out.
package stroke

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroker collects line segments and composites them onto an image.
// Create one instance and reuse it; the rasteriser buffers are kept
// between calls to Reset.
//
// A Stroker is not safe for concurrent use.
type Stroker struct {
	// Width is the line width in device pixels. Must be positive.
	Width float64

	// Cap sets the style for segment end points (butt, round, or square).
	Cap graphics.LineCapStyle

	// Flatness controls the arc approximation accuracy of round caps,
	// in device pixels. Must be positive.
	Flatness float64

	z       *vector.Rasterizer
	clip    rect.Rect  // device area, grown by the line width
	outline []vec.Vec2 // scratch buffer for one segment outline
	count   int        // number of outlines since the last Reset
}

// New returns a Stroker for a width×height device area, with a line width
// of one pixel and butt caps.
func New(width, height int) *Stroker {
	s := &Stroker{
		Width:    1,
		Cap:      graphics.LineCapButt,
		Flatness: defaultFlatness,
	}
	s.Reset(width, height)
	return s
}

// Reset discards all collected segments and resizes the device area.
// Width, Cap and Flatness are left unchanged.
func (s *Stroker) Reset(width, height int) {
	if s.z == nil {
		s.z = vector.NewRasterizer(width, height)
	} else {
		s.z.Reset(width, height)
	}
	pad := s.Width + 1
	s.clip = rect.Rect{
		LLx: -pad,
		LLy: -pad,
		URx: float64(width) + pad,
		URy: float64(height) + pad,
	}
	s.count = 0
}

// Len returns the number of outlines collected since the last Reset.
func (s *Stroker) Len() int {
	return s.count
}

// Segment adds the line segment from a to b. Segments with a non-finite
// coordinate, and segments which lie completely outside the device area,
// are silently ignored.
func (s *Stroker) Segment(a, b vec.Vec2) {
	if !isFinite(a) || !isFinite(b) {
		return
	}
	a, b, ok := clipSegment(a, b, s.clip)
	if !ok {
		return
	}

	d := 0.5 * s.Width
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		// A zero-length segment has no direction, so only a round cap
		// can be drawn.
		if s.Cap == graphics.LineCapRound {
			s.outline = s.outline[:0]
			s.addArc(a, d, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}, 2*math.Pi)
			s.emit()
		}
		return
	}

	T := delta.Mul(1 / length)     // unit tangent
	N := vec.Vec2{X: -T.Y, Y: T.X} // unit normal (90° CCW)
	s.outline = s.outline[:0]
	switch s.Cap {
	case graphics.LineCapRound:
		s.outline = append(s.outline, a.Add(N.Mul(d)), b.Add(N.Mul(d)))
		s.addArc(b, d, N, T, math.Pi)
		s.outline = append(s.outline, a.Sub(N.Mul(d)))
		s.addArc(a, d, N.Mul(-1), T.Mul(-1), math.Pi)
	case graphics.LineCapSquare:
		a = a.Sub(T.Mul(d))
		b = b.Add(T.Mul(d))
		fallthrough
	default:
		s.outline = append(s.outline,
			a.Add(N.Mul(d)),
			b.Add(N.Mul(d)),
			b.Sub(N.Mul(d)),
			a.Sub(N.Mul(d)))
	}
	s.emit()
}

// Draw composites the collected outlines onto dst, using c as the paint
// color. The collected segments are kept; call Reset to start over.
func (s *Stroker) Draw(dst *image.RGBA, c color.Color) {
	if s.count == 0 {
		return
	}
	s.z.DrawOp = draw.Over
	s.z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// emit passes the current outline to the rasteriser as a closed subpath.
func (s *Stroker) emit() {
	if len(s.outline) < 3 {
		return
	}
	p := s.outline[0]
	s.z.MoveTo(float32(p.X), float32(p.Y))
	for _, p := range s.outline[1:] {
		s.z.LineTo(float32(p.X), float32(p.Y))
	}
	s.z.ClosePath()
	s.count++
}

// addArc appends points on the circle of the given radius around center.
// The arc starts in direction from, turns towards the perpendicular
// direction toward, and covers the given sweep angle. The start point
// itself is not appended.
func (s *Stroker) addArc(center vec.Vec2, radius float64, from, toward vec.Vec2, sweep float64) {
	n := arcSteps(radius, sweep, s.Flatness)
	for i := 1; i <= n; i++ {
		phi := sweep * float64(i) / float64(n)
		off := from.Mul(radius * math.Cos(phi)).Add(toward.Mul(radius * math.Sin(phi)))
		s.outline = append(s.outline, center.Add(off))
	}
}

// arcSteps returns the number of chords needed to approximate an arc such
// that the distance between chord and arc does not exceed tol.
func arcSteps(radius, sweep, tol float64) int {
	if radius <= tol {
		return max(2, int(math.Ceil(sweep/math.Pi)))
	}
	// chord error: r·(1 - cos(Δ/2)) ≤ tol
	delta := 2 * math.Acos(1-tol/radius)
	return max(2, int(math.Ceil(sweep/delta)))
}

// clipSegment clips the segment a→b to the rectangle r using the
// Liang-Barsky algorithm. The result is false if no part of the segment
// lies inside r. Clipped end points are placed exactly on the clip edge,
// so that far-away end points do not lose precision.
func clipSegment(a, b vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	d := b.Sub(a)
	if !isFinite(d) {
		return a, b, false
	}

	edge := [4]float64{r.LLx, r.URx, r.LLy, r.URy}
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{a.X - r.LLx, r.URx - a.X, a.Y - r.LLy, r.URy - a.Y}

	t0, t1 := 0.0, 1.0
	e0, e1 := -1, -1
	for i := range 4 {
		if p[i] == 0 {
			if q[i] < 0 {
				return a, b, false // parallel and outside
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0, e0 = t, i
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1, e1 = t, i
			}
		}
	}

	ca, cb := a, b
	if e0 >= 0 {
		ca = pointOnEdge(a, b, t0, e0, edge[e0])
	}
	if e1 >= 0 {
		cb = pointOnEdge(a, b, t1, e1, edge[e1])
	}
	return ca, cb, isFinite(ca) && isFinite(cb)
}

// pointOnEdge returns the point at parameter t on a→b, snapped to the clip
// edge with index i (0, 1: vertical edges; 2, 3: horizontal edges).
// Interpolation starts from the closer end point.
func pointOnEdge(a, b vec.Vec2, t float64, i int, v float64) vec.Vec2 {
	var p vec.Vec2
	if t <= 0.5 {
		p = a.Add(b.Sub(a).Mul(t))
	} else {
		p = b.Sub(b.Sub(a).Mul(1 - t))
	}
	if i < 2 {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

const (
	// defaultFlatness is the default arc approximation tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// zeroLengthThreshold is the minimum length for an oriented segment.
	zeroLengthThreshold = 1e-10
)

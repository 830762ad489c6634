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
	"image/color"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/graphview/internal/stroke"
)

// Options configures the appearance of the curves drawn by a [View].
// A nil *Options selects the defaults for all fields.
type Options struct {
	// Window is the initial window. Nil selects [DefaultBounds].
	Window *Bounds

	// StrokeWidth is the curve width in pixels. Zero selects 1.
	StrokeWidth float64

	// Cap is the style used at the ends of the line segments.
	// The zero value is [graphics.LineCapButt].
	Cap graphics.LineCapStyle

	// DefaultColor is used for entries without a preferred color.
	// Nil selects black.
	DefaultColor color.Color
}

// DefaultColor is the stroke color of entries without a preferred color,
// unless the view options say otherwise.
var DefaultColor color.Color = color.Black

// Renderer draws entries onto surfaces, using the current state of a
// [Projector].
type Renderer struct {
	proj         *Projector
	defaultColor color.Color
	stroker      *stroke.Stroker
	trace        []vec.Vec2
}

// NewRenderer returns a renderer which samples functions over the window
// last passed to proj.Recompute.
func NewRenderer(proj *Projector, opts *Options) *Renderer {
	if opts == nil {
		opts = &Options{}
	}
	r := &Renderer{
		proj:         proj,
		defaultColor: opts.DefaultColor,
		stroker:      stroke.New(0, 0),
	}
	if r.defaultColor == nil {
		r.defaultColor = DefaultColor
	}
	if opts.StrokeWidth > 0 {
		r.stroker.Width = opts.StrokeWidth
	}
	r.stroker.Cap = opts.Cap
	return r
}

// Render draws the curve of e onto s. The surface is assumed to be clear.
//
// The function is sampled once per pixel column and consecutive samples
// are joined by straight line segments. Samples with NaN or infinite
// values produce no visible output.
func (r *Renderer) Render(e *Entry, s *Surface) {
	w, h := s.Size()
	r.stroker.Reset(w, h)

	r.trace = AppendTrace(r.trace[:0], e.Function(), r.proj)
	for i := 1; i < len(r.trace); i++ {
		r.stroker.Segment(r.trace[i-1], r.trace[i])
	}
	r.stroker.Draw(s.Image(), e.ColorOr(r.defaultColor))
}

// AppendTrace samples fn once per pixel column of the viewport of p and
// appends the projected sample points to dst. The samples are taken from
// left to right in window space, independent of the orientation of the
// window. Non-finite points are included unchanged.
func AppendTrace(dst []vec.Vec2, fn Function, p *Projector) []vec.Vec2 {
	if fn == nil {
		return dst
	}
	width, _ := p.Viewport()
	win := p.Window()

	begin := min(win.Left, win.Right)
	end := max(win.Left, win.Right)
	step := (end - begin) / float64(width)
	for i := range width {
		x := begin + step*float64(i)
		y := fn(x)
		dst = append(dst, vec.Vec2{X: p.ProjectX(x), Y: p.ProjectY(y)})
	}
	return dst
}

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
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
)

// Host displays the surfaces of a [View].
//
// Surfaces are shown in the order in which they were added, later
// surfaces on top of earlier ones.
type Host interface {
	// Size returns the current pixel dimensions.
	Size() (width, height int)

	// AddSurface places s on top of all surfaces shown so far.
	AddSurface(s *Surface)

	// RemoveSurface stops showing s.
	RemoveSurface(s *Surface)

	// OnResize registers fn to be called after every size change.
	// The returned function removes the registration.
	OnResize(fn func(width, height int)) (cancel func())
}

// Panel is an in-memory [Host] which composites its surfaces into a
// single image.
type Panel struct {
	width, height int
	surfaces      []*Surface
	resize        []*resizeSlot
}

type resizeSlot struct {
	fn func(width, height int)
}

var _ Host = (*Panel)(nil)

// NewPanel returns an empty panel of the given size.
func NewPanel(width, height int) *Panel {
	return &Panel{width: width, height: height}
}

// Size implements the [Host] interface.
func (p *Panel) Size() (width, height int) {
	return p.width, p.height
}

// AddSurface implements the [Host] interface.
func (p *Panel) AddSurface(s *Surface) {
	if slices.Contains(p.surfaces, s) {
		panic(fmt.Sprintf("graphview: surface %p added to panel twice", s))
	}
	p.surfaces = append(p.surfaces, s)
}

// RemoveSurface implements the [Host] interface.
func (p *Panel) RemoveSurface(s *Surface) {
	idx := slices.Index(p.surfaces, s)
	if idx < 0 {
		panic(fmt.Sprintf("graphview: surface %p is not on the panel", s))
	}
	p.surfaces = slices.Delete(p.surfaces, idx, idx+1)
}

// OnResize implements the [Host] interface.
func (p *Panel) OnResize(fn func(width, height int)) (cancel func()) {
	slot := &resizeSlot{fn: fn}
	p.resize = append(p.resize, slot)
	return func() {
		p.resize = slices.DeleteFunc(p.resize, func(x *resizeSlot) bool {
			return x == slot
		})
	}
}

// Resize changes the panel size and notifies the resize listeners.
// Nothing happens if the size is unchanged.
func (p *Panel) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height
	for _, slot := range slices.Clone(p.resize) {
		slot.fn(width, height)
	}
}

// Surfaces returns the displayed surfaces, back to front.
func (p *Panel) Surfaces() []*Surface {
	return slices.Clone(p.surfaces)
}

// Compose draws all surfaces, back to front, over the given background
// color and returns the result. A nil background leaves the image
// transparent.
func (p *Panel) Compose(background color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	if background != nil {
		draw.Draw(dst, dst.Rect, image.NewUniform(background), image.Point{}, draw.Src)
	}
	for _, s := range p.surfaces {
		draw.Draw(dst, dst.Rect, s.Image(), image.Point{}, draw.Over)
	}
	return dst
}

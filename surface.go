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

import "image"

// Surface is a raster drawing target for one plotted entry.
//
// A Surface is owned either by a [SurfacePool] or by exactly one entry in
// a [Registry]. Hosts only display surfaces; they must not retain them
// after RemoveSurface.
type Surface struct {
	img *image.RGBA
}

func newSurface(width, height int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the pixels of the surface.
// The returned image is replaced when the surface is resized.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height int) {
	b := s.img.Rect
	return b.Dx(), b.Dy()
}

// Clear makes every pixel fully transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Resize changes the surface dimensions. The pixel buffer is reused if it
// is large enough. Pixel contents are undefined after a size change.
func (s *Surface) Resize(width, height int) {
	if w, h := s.Size(); w == width && h == height {
		return
	}
	n := 4 * width * height
	pix := s.img.Pix
	if cap(pix) < n {
		pix = make([]uint8, n)
	} else {
		pix = pix[:n]
	}
	s.img = &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

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
	"slices"
)

// SurfacePool keeps idle surfaces for reuse.
// Surfaces are handed out in LIFO order, so that the most recently
// released surface is reused first.
//
// The zero value is an empty pool, ready to use.
type SurfacePool struct {
	idle      []*Surface
	allocated int
}

// Acquire returns a blank surface of the given size. An idle surface is
// reused if one is available; otherwise a new surface is allocated.
func (p *SurfacePool) Acquire(width, height int) *Surface {
	n := len(p.idle)
	if n == 0 {
		p.allocated++
		Logger().Debug("graphview: surface allocated",
			"width", width, "height", height, "allocated", p.allocated)
		return newSurface(width, height)
	}

	s := p.idle[n-1]
	p.idle[n-1] = nil
	p.idle = p.idle[:n-1]
	s.Resize(width, height)
	s.Clear()
	return s
}

// Release returns a surface to the pool. The surface is not cleared
// until it is acquired again.
//
// Releasing a surface which is already idle is a programming error and
// causes a panic.
func (p *SurfacePool) Release(s *Surface) {
	if slices.Contains(p.idle, s) {
		panic(fmt.Sprintf("graphview: surface %p released twice", s))
	}
	p.idle = append(p.idle, s)
}

// Idle returns the number of surfaces waiting for reuse.
func (p *SurfacePool) Idle() int {
	return len(p.idle)
}

// Allocated returns the number of surfaces in existence which were
// created by this pool: the idle ones plus the ones currently acquired.
func (p *SurfacePool) Allocated() int {
	return p.allocated
}

// Close drops all idle surfaces. Acquired surfaces are not affected and
// may still be released later.
func (p *SurfacePool) Close() {
	p.allocated -= len(p.idle)
	clear(p.idle)
	p.idle = nil
}

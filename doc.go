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

// Package graphview draws the graphs of real functions onto raster
// surfaces and keeps them up to date.
//
// A [View] connects three things: a [Data] set holding the plotted
// [Entry] values, a window into the plane given by [Bounds], and a [Host]
// which displays one [Surface] per entry. Whenever the window, the host
// size, or the data set change, the affected surfaces are redrawn before
// the call returns. Surfaces of removed entries are kept in a
// [SurfacePool] and reused for later entries.
//
// Each function is sampled once per pixel column and the samples are
// joined by straight line segments. Samples where the function is NaN or
// infinite are left out, so that functions with a restricted domain or
// with poles can be plotted directly.
//
// The package logs through [log/slog]; see [SetLogger].
package graphview

//go:generate go run ./testcases/genpdf
//go:generate go run ./testcases/export

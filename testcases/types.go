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

package testcases

import (
	"image/color"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/graphview"
)

// TestCase defines a single plotting scenario.
type TestCase struct {
	Name   string           // lowercase a-z, 0-9 and _ only
	Width  int              // viewport width in pixels
	Height int              // viewport height in pixels
	Window graphview.Bounds // the visible part of the plane
	Curves []Curve          // back to front
	Stroke Stroke
	Blank  bool // the scenario must not paint any pixels
}

// Curve is one plotted function.
type Curve struct {
	Fn    graphview.Function
	Color color.Color // nil selects the default color
}

// Stroke describes the line style used for all curves of a scenario.
type Stroke struct {
	Width float64 // zero selects one pixel
	Cap   graphics.LineCapStyle
}

// Options returns the view options for the scenario.
func (tc *TestCase) Options() *graphview.Options {
	win := tc.Window
	return &graphview.Options{
		Window:      &win,
		StrokeWidth: tc.Stroke.Width,
		Cap:         tc.Stroke.Cap,
	}
}

// Data returns a fresh data set holding the curves of the scenario.
func (tc *TestCase) Data() *graphview.Data {
	entries := make([]*graphview.Entry, len(tc.Curves))
	for i, c := range tc.Curves {
		entries[i] = graphview.NewEntry(c.Fn, c.Color)
	}
	data, err := graphview.NewData(entries...)
	if err != nil {
		// unreachable: the entries are new
		panic(err)
	}
	return data
}

var unit = graphview.DefaultBounds

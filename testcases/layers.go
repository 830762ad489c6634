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
	"math"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/graphview"
)

// layerCases stack several curves on top of each other.
var layerCases = []TestCase{
	{
		Name:   "crossing",
		Width:  64,
		Height: 64,
		Window: unit,
		Curves: []Curve{
			{Fn: func(x float64) float64 { return x }, Color: color.RGBA{R: 255, A: 255}},
			{Fn: func(x float64) float64 { return -x }, Color: color.RGBA{B: 255, A: 255}},
		},
		Stroke: Stroke{Width: 3},
	},
	{
		Name:   "family",
		Width:  128,
		Height: 96,
		Window: graphview.Bounds{Left: -math.Pi, Right: math.Pi, Bottom: -3, Top: 3},
		Curves: []Curve{
			{Fn: math.Sin},
			{Fn: func(x float64) float64 { return 2 * math.Sin(x) }, Color: color.RGBA{G: 128, A: 255}},
			{Fn: func(x float64) float64 { return 3 * math.Sin(x) }, Color: color.RGBA{R: 200, G: 100, A: 255}},
		},
		Stroke: Stroke{Width: 1.5, Cap: graphics.LineCapRound},
	},
	{
		Name:   "translucent",
		Width:  64,
		Height: 64,
		Window: unit,
		Curves: []Curve{
			{Fn: func(float64) float64 { return 0 }, Color: color.NRGBA{R: 255, A: 128}},
			{Fn: func(x float64) float64 { return x / 4 }, Color: color.NRGBA{G: 255, A: 128}},
		},
		Stroke: Stroke{Width: 8},
	},
}

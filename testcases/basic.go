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
	"math"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/graphview"
)

var basicCases = []TestCase{
	{
		Name:   "constant",
		Width:  64,
		Height: 64,
		Window: unit,
		Curves: []Curve{{Fn: func(float64) float64 { return 0.25 }}},
	},
	{
		Name:   "identity",
		Width:  64,
		Height: 64,
		Window: unit,
		Curves: []Curve{{Fn: func(x float64) float64 { return x }}},
	},
	{
		Name:   "parabola",
		Width:  96,
		Height: 64,
		Window: graphview.Bounds{Left: -2, Right: 2, Bottom: -0.5, Top: 4.5},
		Curves: []Curve{{Fn: func(x float64) float64 { return x * x }}},
	},
	{
		Name:   "sine",
		Width:  128,
		Height: 64,
		Window: graphview.Bounds{Left: -2 * math.Pi, Right: 2 * math.Pi, Bottom: -1.5, Top: 1.5},
		Curves: []Curve{{Fn: math.Sin}},
	},
	{
		Name:   "cubic_steep",
		Width:  64,
		Height: 64,
		Window: graphview.Bounds{Left: -3, Right: 3, Bottom: -5, Top: 5},
		Curves: []Curve{{Fn: func(x float64) float64 { return x * x * x }}},
	},
}

var strokeCases = []TestCase{
	{
		Name:   "wide_butt",
		Width:  64,
		Height: 64,
		Window: unit,
		Curves: []Curve{{Fn: math.Sin}},
		Stroke: Stroke{Width: 6, Cap: graphics.LineCapButt},
	},
	{
		Name:   "wide_round",
		Width:  64,
		Height: 64,
		Window: unit,
		Curves: []Curve{{Fn: math.Sin}},
		Stroke: Stroke{Width: 6, Cap: graphics.LineCapRound},
	},
	{
		Name:   "wide_square",
		Width:  64,
		Height: 64,
		Window: unit,
		Curves: []Curve{{Fn: math.Sin}},
		Stroke: Stroke{Width: 6, Cap: graphics.LineCapSquare},
	},
	{
		Name:   "hairline",
		Width:  64,
		Height: 64,
		Window: unit,
		Curves: []Curve{{Fn: func(x float64) float64 { return -x / 2 }}},
		Stroke: Stroke{Width: 0.25},
	},
}

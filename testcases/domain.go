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

// domainCases contain functions which are undefined or unbounded on
// parts of the window.
var domainCases = []TestCase{
	{
		Name:   "sqrt",
		Width:  64,
		Height: 64,
		Window: graphview.Bounds{Left: -2, Right: 2, Bottom: -0.5, Top: 1.5},
		Curves: []Curve{{Fn: math.Sqrt}},
	},
	{
		Name:   "log",
		Width:  64,
		Height: 64,
		Window: graphview.Bounds{Left: -1, Right: 3, Bottom: -3, Top: 2},
		Curves: []Curve{{Fn: math.Log}},
	},
	{
		Name:   "reciprocal",
		Width:  64,
		Height: 64,
		Window: graphview.Bounds{Left: -2, Right: 2, Bottom: -4, Top: 4},
		Curves: []Curve{{Fn: func(x float64) float64 { return 1 / x }}},
	},
	{
		Name:   "tangent",
		Width:  128,
		Height: 64,
		Window: graphview.Bounds{Left: -5, Right: 5, Bottom: -4, Top: 4},
		Curves: []Curve{{Fn: math.Tan}},
		Stroke: Stroke{Width: 2, Cap: graphics.LineCapRound},
	},
	{
		Name:   "huge_values",
		Width:  64,
		Height: 64,
		Window: unit,
		Curves: []Curve{{Fn: func(x float64) float64 {
			if x > 0 {
				return 1e300
			}
			return x
		}}},
	},
	{
		Name:   "nan_everywhere",
		Width:  32,
		Height: 32,
		Window: unit,
		Curves: []Curve{{Fn: func(float64) float64 { return math.NaN() }}},
		Blank:  true,
	},
	{
		Name:   "nil_function",
		Width:  32,
		Height: 32,
		Window: unit,
		Curves: []Curve{{}},
		Blank:  true,
	},
}

var windowCases = []TestCase{
	{
		Name:   "mirrored_x",
		Width:  64,
		Height: 64,
		Window: graphview.Bounds{Left: 1, Right: -1, Bottom: -1, Top: 1},
		Curves: []Curve{{Fn: func(x float64) float64 { return x }}},
	},
	{
		Name:   "mirrored_y",
		Width:  64,
		Height: 64,
		Window: graphview.Bounds{Left: -1, Right: 1, Bottom: 1, Top: -1},
		Curves: []Curve{{Fn: func(x float64) float64 { return x * x }}},
	},
	{
		Name:   "offset",
		Width:  64,
		Height: 48,
		Window: graphview.Bounds{Left: 1000, Right: 1010, Bottom: 2, Top: 4},
		Curves: []Curve{{Fn: func(x float64) float64 { return 3 + math.Sin(x) }}},
	},
	{
		Name:   "tiny",
		Width:  64,
		Height: 64,
		Window: graphview.Bounds{Left: 1, Right: 1 + 1e-9, Bottom: 1 - 1e-9, Top: 1 + 1e-9},
		Curves: []Curve{{Fn: func(x float64) float64 { return x }}},
	},
	{
		Name:   "degenerate_x",
		Width:  32,
		Height: 32,
		Window: graphview.Bounds{Left: 0.5, Right: 0.5, Bottom: -1, Top: 1},
		Curves: []Curve{{Fn: math.Sin}},
		Blank:  true,
	},
	{
		Name:   "degenerate_y",
		Width:  32,
		Height: 32,
		Window: graphview.Bounds{Left: -1, Right: 1, Bottom: 0, Top: 0},
		Curves: []Curve{{Fn: math.Sin}},
		Blank:  true,
	},
}

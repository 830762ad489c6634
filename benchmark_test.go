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

package graphview_test

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/graphview"
	"seehuhn.de/go/graphview/testcases"
)

// BenchmarkRender measures drawing a single sine curve.
func BenchmarkRender(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			proj := graphview.NewProjector()
			proj.Recompute(size, size, -10, 10, -1.5, 1.5)
			r := graphview.NewRenderer(proj, &graphview.Options{StrokeWidth: 2})

			pool := &graphview.SurfacePool{}
			s := pool.Acquire(size, size)
			e := graphview.NewEntry(math.Sin, nil)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				s.Clear()
				r.Render(e, s)
			}
		})
	}
}

// BenchmarkPan measures a full remap pass of a view with several curves.
func BenchmarkPan(b *testing.B) {
	panel := graphview.NewPanel(800, 600)
	data, _ := graphview.NewData()
	for k := range 8 {
		a := float64(k + 1)
		_ = data.Add(graphview.NewEntry(func(x float64) float64 {
			return math.Sin(a*x) / a
		}, nil))
	}
	view := graphview.New(panel, data, nil)
	defer view.Dispose()

	b.ReportAllocs()
	for b.Loop() {
		view.Pan(0.01, 0)
	}
}

// BenchmarkScenarios measures setting up, drawing and tearing down each
// test scenario.
func BenchmarkScenarios(b *testing.B) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			b.Run(category+"_"+tc.Name, func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					panel := graphview.NewPanel(tc.Width, tc.Height)
					view := graphview.New(panel, tc.Data(), tc.Options())
					view.Dispose()
				}
			})
		}
	}
}

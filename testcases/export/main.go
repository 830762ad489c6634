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

// Command export writes the sampled curves of all plotting scenarios to
// testdata/traces.yaml, for inspection with external tools.
// Run from the module root directory.
package main

import (
	"log"
	"maps"
	"os"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/graphview"
	"seehuhn.de/go/graphview/testcases"
)

type yamlFile struct {
	Scenarios []yamlScenario `yaml:"scenarios"`
}

type yamlScenario struct {
	Name   string           `yaml:"name"`
	Width  int              `yaml:"width"`
	Height int              `yaml:"height"`
	Window graphview.Bounds `yaml:"window"`
	Stroke float64          `yaml:"stroke,omitempty"`
	Cap    string           `yaml:"cap"`
	Blank  bool             `yaml:"blank,omitempty"`
	Curves []yamlCurve      `yaml:"curves"`
}

type yamlCurve struct {
	Color  string       `yaml:"color,omitempty"`
	Points [][2]float64 `yaml:"points,flow"`
}

func main() {
	var out yamlFile
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.Scenarios = append(out.Scenarios, toYAML(category, tc))
		}
	}

	f, err := os.Create("testdata/traces.yaml")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
}

func toYAML(category string, tc testcases.TestCase) yamlScenario {
	ys := yamlScenario{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Window: tc.Window,
		Stroke: tc.Stroke.Width,
		Cap:    tc.Stroke.Cap.String(),
		Blank:  tc.Blank,
	}

	proj := graphview.NewProjector()
	w := tc.Window
	proj.Recompute(tc.Width, tc.Height, w.Left, w.Right, w.Bottom, w.Top)

	var trace []vec.Vec2
	for _, c := range tc.Curves {
		var yc yamlCurve
		if c.Color != nil {
			if cf, ok := colorful.MakeColor(c.Color); ok {
				yc.Color = cf.Hex()
			}
		}
		trace = graphview.AppendTrace(trace[:0], c.Fn, proj)
		for _, p := range trace {
			yc.Points = append(yc.Points, [2]float64{p.X, p.Y})
		}
		ys.Curves = append(ys.Curves, yc)
	}
	return ys
}

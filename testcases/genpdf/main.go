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

// Command genpdf generates reference images for the plotting tests.
// It creates a PDF for every scenario and renders it to a PNG using
// Ghostscript, if Ghostscript is installed.
package main

import (
	"fmt"
	"log"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/graphview"
	"seehuhn.de/go/graphview/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		log.Fatal(err)
	}

	gs, err := exec.LookPath("gs")
	if err != nil {
		log.Print("ghostscript not found, writing PDF files only")
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
			if gs == "" {
				continue
			}
			if err := renderPNG(gs, pdfPath, pngPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// 1 point = 1 pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that gray levels are coverage values
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left, viewport origin is top-left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetStrokeColor(color.DeviceGray(1))
	width := tc.Stroke.Width
	if width <= 0 {
		width = 1
	}
	page.SetLineWidth(width)
	page.SetLineCap(tc.Stroke.Cap)

	proj := graphview.NewProjector()
	w := tc.Window
	proj.Recompute(tc.Width, tc.Height, w.Left, w.Right, w.Bottom, w.Top)

	var trace []vec.Vec2
	for _, c := range tc.Curves {
		trace = graphview.AppendTrace(trace[:0], c.Fn, proj)
		if addPolyline(page, trace) {
			page.Stroke()
		}
	}

	return page.Close()
}

type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}

// addPolyline adds the finite parts of trace to the current path, starting
// a new subpath after every non-finite point. The return value reports
// whether any segment was added.
func addPolyline(page pathBuilder, trace []vec.Vec2) bool {
	const limit = 1e6 // keep coordinates within the range PDF readers accept

	open := false
	drawn := false
	for _, p := range trace {
		if !finite(p) || math.Abs(p.X) > limit || math.Abs(p.Y) > limit {
			open = false
			continue
		}
		if open {
			page.LineTo(p.X, p.Y)
			drawn = true
		} else {
			page.MoveTo(p.X, p.Y)
			open = true
		}
	}
	return drawn
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func renderPNG(gs, pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, compared against the alpha channel
	// -r72: 1 point = 1 pixel
	// -dGraphicsAlphaBits=4: anti-aliasing
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

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

package plot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Width:      40,
		Height:     20,
		Window:     Window{Left: -1, Right: 1, Bottom: -1, Top: 1},
		Stroke:     Stroke{Width: 2},
		Background: "#ffffff",
		Color:      "#000000",
	}
}

func TestPlotImage(t *testing.T) {
	conf := testConfig()
	conf.Curves = []Curve{
		{Expr: "0.5"},
		{Expr: "-0.5", Color: "#ff0000"},
	}

	p, err := New(conf)
	require.NoError(t, err)
	defer p.Close()

	require.Len(t, p.Panel.Surfaces(), 2)
	img, err := p.Image()
	require.NoError(t, err)

	// y = 0.5 is drawn on row 5, y = -0.5 on row 15
	assertNear(t, color.RGBA{A: 255}, img.RGBAAt(20, 5))
	assertNear(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(20, 15))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(20, 10))
}

func assertNear(t *testing.T, want, got color.RGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 2, "red")
	assert.InDelta(t, want.G, got.G, 2, "green")
	assert.InDelta(t, want.B, got.B, 2, "blue")
	assert.InDelta(t, want.A, got.A, 2, "alpha")
}

func TestPlotPanZoom(t *testing.T) {
	conf := testConfig()
	conf.Pan = Pan{X: 1}
	conf.Zoom = Zoom{Factor: 2, X: 1, Y: 0}

	p, err := New(conf)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, 0.5, p.View.Left())
	assert.Equal(t, 1.5, p.View.Right())
	assert.Equal(t, -0.5, p.View.Bottom())
	assert.Equal(t, 0.5, p.View.Top())
}

func TestPlotErrors(t *testing.T) {
	conf := testConfig()
	conf.Curves = []Curve{{Expr: "x"}, {Expr: "x +"}}
	_, err := New(conf)
	assert.ErrorContains(t, err, "curve 2")

	conf = testConfig()
	conf.Curves = []Curve{{Expr: "x", Color: "#zzzzzz"}}
	_, err = New(conf)
	assert.ErrorIs(t, err, errColor)

	conf = testConfig()
	conf.Background = "white"
	p, err := New(conf)
	require.NoError(t, err)
	defer p.Close()
	_, err = p.Image()
	assert.ErrorIs(t, err, errColor)
}

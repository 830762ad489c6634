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
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/graphview"
)

func loadYAML(t *testing.T, doc string) (*Config, error) {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(doc)))
	return Load(v)
}

func TestLoadDefaults(t *testing.T) {
	conf, err := loadYAML(t, "")
	require.NoError(t, err)

	assert.Equal(t, 640, conf.Width)
	assert.Equal(t, 480, conf.Height)
	assert.Equal(t, graphview.DefaultBounds, conf.Bounds())
	assert.Empty(t, conf.Curves)

	opts, err := conf.Options()
	require.NoError(t, err)
	assert.Equal(t, 1.0, opts.StrokeWidth)
	assert.Equal(t, graphics.LineCapButt, opts.Cap)
	assert.Equal(t, color.NRGBA{A: 255}, opts.DefaultColor)
}

func TestLoadFile(t *testing.T) {
	conf, err := loadYAML(t, heredoc.Doc(`
		width: 200
		height: 100
		window:
		  left: 0
		  right: 10
		stroke:
		  width: 2.5
		  cap: Round
		zoom:
		  factor: 2
		curves:
		  - expr: math.Sin(x)
		    color: "#ff0000"
		  - expr: x / 10
	`))
	require.NoError(t, err)

	assert.Equal(t, 200, conf.Width)
	assert.Equal(t, 100, conf.Height)
	assert.Equal(t, graphview.Bounds{Left: 0, Right: 10, Bottom: -1, Top: 1}, conf.Bounds())
	assert.Equal(t, 2.0, conf.Zoom.Factor)
	assert.Equal(t, []Curve{
		{Expr: "math.Sin(x)", Color: "#ff0000"},
		{Expr: "x / 10"},
	}, conf.Curves)

	opts, err := conf.Options()
	require.NoError(t, err)
	assert.Equal(t, 2.5, opts.StrokeWidth)
	assert.Equal(t, graphics.LineCapRound, opts.Cap)
	assert.Equal(t, conf.Bounds(), *opts.Window)
}

func TestLoadErrors(t *testing.T) {
	_, err := loadYAML(t, "width: 0\n")
	assert.ErrorIs(t, err, errSize)

	conf, err := loadYAML(t, "stroke:\n  cap: pointy\n")
	require.NoError(t, err)
	_, err = conf.Options()
	assert.ErrorIs(t, err, errCap)

	conf, err = loadYAML(t, "color: blue\n")
	require.NoError(t, err)
	_, err = conf.Options()
	assert.ErrorIs(t, err, errColor)
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
	}{
		{"", nil},
		{"none", nil},
		{"#000", color.NRGBA{A: 255}},
		{"#ff8000", color.NRGBA{R: 255, G: 128, A: 255}},
		{" #FF8000 ", color.NRGBA{R: 255, G: 128, A: 255}},
		{"#00ff0080", color.NRGBA{G: 255, A: 128}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	for _, bad := range []string{"red", "#gg0000", "#00ff00zz"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, errColor, bad)
	}
}

func TestParseCap(t *testing.T) {
	for name, want := range map[string]graphics.LineCapStyle{
		"":       graphics.LineCapButt,
		"butt":   graphics.LineCapButt,
		"round":  graphics.LineCapRound,
		"SQUARE": graphics.LineCapSquare,
	} {
		got, err := ParseCap(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

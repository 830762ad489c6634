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

// Package plot turns a plot description, as read from a configuration
// file, into a rendered image.
package plot

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/graphview"
)

// Config describes a plot.
type Config struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`

	Window     Window  `mapstructure:"window"`
	Stroke     Stroke  `mapstructure:"stroke"`
	Pan        Pan     `mapstructure:"pan"`
	Zoom       Zoom    `mapstructure:"zoom"`
	Background string  `mapstructure:"background"`
	Color      string  `mapstructure:"color"`
	Curves     []Curve `mapstructure:"curves"`
}

// Window is the visible part of the plane.
type Window struct {
	Left   float64 `mapstructure:"left"`
	Right  float64 `mapstructure:"right"`
	Bottom float64 `mapstructure:"bottom"`
	Top    float64 `mapstructure:"top"`
}

// Stroke is the line style of all curves.
type Stroke struct {
	Width float64 `mapstructure:"width"`
	Cap   string  `mapstructure:"cap"`
}

// Pan shifts the window after it has been set up.
type Pan struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

// Zoom scales the window around (X, Y) after panning.
// A zero Factor leaves the window unchanged.
type Zoom struct {
	Factor float64 `mapstructure:"factor"`
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
}

// Curve is one plotted function.
type Curve struct {
	// Expr is a Go function literal of type func(float64) float64, or
	// an expression in x. The math package is available.
	Expr  string `mapstructure:"expr"`
	Color string `mapstructure:"color"`
}

var (
	errSize  = errors.New("width and height must be positive")
	errCap   = errors.New("unknown line cap")
	errColor = errors.New("invalid color")
)

// SetDefaults registers the default values of all settings with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", 640)
	v.SetDefault("height", 480)
	v.SetDefault("window.left", graphview.DefaultBounds.Left)
	v.SetDefault("window.right", graphview.DefaultBounds.Right)
	v.SetDefault("window.bottom", graphview.DefaultBounds.Bottom)
	v.SetDefault("window.top", graphview.DefaultBounds.Top)
	v.SetDefault("stroke.width", 1.0)
	v.SetDefault("stroke.cap", "butt")
	v.SetDefault("background", "#ffffff")
	v.SetDefault("color", "#000000")
}

// Load reads the plot description from v.
func Load(v *viper.Viper) (*Config, error) {
	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("reading plot configuration: %w", err)
	}
	if conf.Width <= 0 || conf.Height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", conf.Width, conf.Height, errSize)
	}
	return conf, nil
}

// Bounds returns the configured window.
func (c *Config) Bounds() graphview.Bounds {
	return graphview.Bounds{
		Left:   c.Window.Left,
		Right:  c.Window.Right,
		Bottom: c.Window.Bottom,
		Top:    c.Window.Top,
	}
}

// Options returns the view options for the plot.
func (c *Config) Options() (*graphview.Options, error) {
	lineCap, err := ParseCap(c.Stroke.Cap)
	if err != nil {
		return nil, err
	}
	col, err := ParseColor(c.Color)
	if err != nil {
		return nil, err
	}
	win := c.Bounds()
	return &graphview.Options{
		Window:       &win,
		StrokeWidth:  c.Stroke.Width,
		Cap:          lineCap,
		DefaultColor: col,
	}, nil
}

// ParseCap converts a line cap name to a cap style.
// The empty string selects butt caps.
func ParseCap(name string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	}
	return 0, fmt.Errorf("%q: %w", name, errCap)
}

// ParseColor parses a color of the form "#rgb", "#rrggbb" or
// "#rrggbbaa". The empty string and "none" give nil.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}

	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, errColor)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, errColor)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

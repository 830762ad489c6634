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
	"fmt"
	"image"

	"seehuhn.de/go/graphview"
)

// Plot is a view of the configured curves on an in-memory panel.
type Plot struct {
	View  *graphview.View
	Panel *graphview.Panel
	conf  *Config
}

// New compiles the curves of conf and draws them.
// The caller must call Close when the plot is no longer needed.
func New(conf *Config) (*Plot, error) {
	opts, err := conf.Options()
	if err != nil {
		return nil, err
	}

	var compiler *Compiler
	if len(conf.Curves) > 0 {
		compiler, err = NewCompiler()
		if err != nil {
			return nil, err
		}
	}

	entries := make([]*graphview.Entry, 0, len(conf.Curves))
	for i, c := range conf.Curves {
		fn, err := compiler.Compile(c.Expr)
		if err != nil {
			return nil, fmt.Errorf("curve %d: %w", i+1, err)
		}
		col, err := ParseColor(c.Color)
		if err != nil {
			return nil, fmt.Errorf("curve %d: %w", i+1, err)
		}
		e := graphview.NewEntry(fn, col)
		graphview.Logger().Debug("curve compiled", "id", e.ID(), "expr", c.Expr)
		entries = append(entries, e)
	}
	data, err := graphview.NewData(entries...)
	if err != nil {
		return nil, err
	}

	panel := graphview.NewPanel(conf.Width, conf.Height)
	view := graphview.New(panel, data, opts)
	if conf.Pan.X != 0 || conf.Pan.Y != 0 {
		view.Pan(conf.Pan.X, conf.Pan.Y)
	}
	if conf.Zoom.Factor != 0 {
		view.Zoom(conf.Zoom.Factor, conf.Zoom.X, conf.Zoom.Y)
	}
	return &Plot{View: view, Panel: panel, conf: conf}, nil
}

// Image composes all curves over the configured background.
func (p *Plot) Image() (*image.RGBA, error) {
	bg, err := ParseColor(p.conf.Background)
	if err != nil {
		return nil, err
	}
	return p.Panel.Compose(bg), nil
}

// Close releases the resources held by the plot.
func (p *Plot) Close() {
	p.View.Dispose()
}

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

package render

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seehuhn.de/go/graphview/internal/plot"
)

// NewRenderCmd creates a command which writes the configured plot to a
// PNG file.
func NewRenderCmd() *cobra.Command {
	var output string
	var exprs []string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Plot functions into a PNG file",
		Long:  `Draw all configured curves, together with the ones given by --fn, and write the result as a PNG image.`,
		Example: heredoc.Doc(`
			# Plot a sine wave over a single period
			$ graphview render --fn 'math.Sin(x)' --left 0 --right 6.2832 -o sine.png

			# Plot the curves from a config file, writing to stdout
			$ graphview render -c plot.yaml -o - > plot.png

			# Use a function literal
			$ graphview render --fn 'func(x float64) float64 { if x < 0 { return -x }; return x }'
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := plot.Load(viper.GetViper())
			if err != nil {
				return err
			}
			for _, e := range exprs {
				conf.Curves = append(conf.Curves, plot.Curve{Expr: e})
			}
			if len(conf.Curves) == 0 {
				log.Warn("No curves configured, the image will be empty")
			}

			p, err := plot.New(conf)
			if err != nil {
				return err
			}
			defer p.Close()

			img, err := p.Image()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := png.Encode(w, img); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			log.Info("Plot written", "file", output, "curves", len(conf.Curves),
				"width", conf.Width, "height", conf.Height)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "plot.png", "Output file, or - for stdout")
	cmd.Flags().StringArrayVar(&exprs, "fn", nil, "Function to plot, as an expression in x (may be repeated)")

	return cmd
}

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

package probe

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seehuhn.de/go/graphview/internal/plot"
)

// NewProbeCmd creates a command which converts pixel positions to window
// coordinates.
func NewProbeCmd() *cobra.Command {
	var px, py float64

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Show the window coordinates of a pixel",
		Long:  `Print the point of the plane shown at the given pixel position, for the configured window and image size.`,
		Example: heredoc.Doc(`
			# Centre of a 640x480 image
			$ graphview probe --px 320 --py 240

			# Top-left corner of a custom window
			$ graphview probe --px 0 --py 0 --left 10 --right 20 --bottom 0 --top 5
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := plot.Load(viper.GetViper())
			if err != nil {
				return err
			}
			conf.Curves = nil

			p, err := plot.New(conf)
			if err != nil {
				return err
			}
			defer p.Close()

			x, y := p.View.UnprojectX(px), p.View.UnprojectY(py)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g %g\n", x, y)
			return err
		},
	}

	cmd.Flags().Float64Var(&px, "px", 0, "Pixel column")
	cmd.Flags().Float64Var(&py, "py", 0, "Pixel row")

	return cmd
}

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

package root

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seehuhn.de/go/graphview"
	"seehuhn.de/go/graphview/cmd/graphview/root/probe"
	"seehuhn.de/go/graphview/cmd/graphview/root/render"
	"seehuhn.de/go/graphview/cmd/graphview/root/version"
	"seehuhn.de/go/graphview/internal/plot"
)

// NewRootCmd creates the graphview command with all subcommands.
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "graphview <command>",
		Short: "Plot real functions",
		Long: heredoc.Doc(`
			Plot the graphs of real functions into image files.

			Settings are read from $HOME/.graphview.yaml or the file given
			with --config, from GRAPHVIEW_* environment variables, and from
			the command line, in increasing order of priority.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				Level:  level,
				Prefix: "graphview",
			})
			log.SetDefault(logger)
			graphview.SetLogger(slog.New(logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	plot.SetDefaults(viper.GetViper())

	flags := cmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Int("width", 0, "Image width in pixels")
	flags.Int("height", 0, "Image height in pixels")
	flags.Float64("left", 0, "Window coordinate at the left edge")
	flags.Float64("right", 0, "Window coordinate at the right edge")
	flags.Float64("bottom", 0, "Window coordinate at the bottom edge")
	flags.Float64("top", 0, "Window coordinate at the top edge")
	for key, name := range map[string]string{
		"width":         "width",
		"height":        "height",
		"window.left":   "left",
		"window.right":  "right",
		"window.bottom": "bottom",
		"window.top":    "top",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}

	cmd.AddCommand(render.NewRenderCmd())
	cmd.AddCommand(probe.NewProbeCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}

// Copyright 2024 Fantom Foundation
// This file is part of the Interval Confidence-Interval Toolkit
//
// Interval is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Interval is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Interval. If not, see <http://www.gnu.org/licenses/>.

package interval

import (
	"fmt"
	"os"

	"github.com/Fantom-foundation/Interval/generator"
	"github.com/Fantom-foundation/Interval/logger"
	"github.com/Fantom-foundation/Interval/utils"
	"github.com/Fantom-foundation/Interval/visualizer"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "plots the intervals of a generate run",
	ArgsUsage: "<result-file>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.PortFlag,
		&utils.OutputFlag,
	},
	Description: `
The visualize command requires one argument:
<result-file>

<result-file> is the JSON file written by the generate command. With --output
the charts are written to a single HTML page; otherwise a web server is started
on --port.`,
}

// visualizeAction implements the visualize command.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.PathArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")
	return runVisualize(cfg, log)
}

func runVisualize(cfg *utils.Config, log logger.Logger) error {
	log.Infof("Read intervals from %v", cfg.ArgPath)
	res, err := generator.ReadJSON(cfg.ArgPath)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		log.Noticef("Write charts to %v", cfg.Output)
		return writeHtml(cfg.Output, res)
	}

	log.Noticef("Open web browser with http://localhost:%v", cfg.Port)
	log.Notice("Cancel by pressing Ctrl-C")
	return visualizer.FireUpWeb(res, cfg.Port)
}

func writeHtml(filename string, res *generator.Result) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create chart file %v; %w", filename, err)
	}
	if err := visualizer.Render(file, res); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

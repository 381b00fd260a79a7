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

package main

import (
	"fmt"
	"os"

	"github.com/Fantom-foundation/Interval/cmd/interval-cli/interval"
	"github.com/Fantom-foundation/Interval/logger"
	"github.com/urfave/cli/v2"
)

// initIntervalApp initializes an interval-cli app.
func initIntervalApp() *cli.App {
	return &cli.App{
		Name:      "Interval Confidence-Interval Toolkit",
		HelpName:  "interval",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags:     []cli.Flag{&logger.LogLevelFlag},
		Commands: []*cli.Command{
			&interval.EstimateCommand,
			&interval.ProportionCommand,
			&interval.SampleCommand,
			&interval.GenerateCommand,
			&interval.VisualizeCommand,
		},
	}
}

// main implements "interval" cli application.
func main() {
	app := initIntervalApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

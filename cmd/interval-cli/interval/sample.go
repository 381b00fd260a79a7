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
	"io"
	"os"

	"github.com/Fantom-foundation/Interval/interval"
	"github.com/Fantom-foundation/Interval/logger"
	"github.com/Fantom-foundation/Interval/population"
	"github.com/Fantom-foundation/Interval/report"
	"github.com/Fantom-foundation/Interval/utils"
	"github.com/urfave/cli/v2"
)

// SampleCommand data structure for the sample app.
var SampleCommand = cli.Command{
	Action:    sampleAction,
	Name:      "sample",
	Usage:     "computes a confidence interval for the mean of observed data",
	ArgsUsage: "<data-file>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.ConfidenceFlag,
		&utils.ModeFlag,
	},
	Description: `
The sample command requires one argument:
<data-file>

<data-file> lists the observations separated by white space or commas;
it may be compressed with gzip (.gz) or bzip2 (.bz2). In proportion mode
the observations must be 0/1 outcomes.`,
}

// sampleAction implements the sample command.
func sampleAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.PathArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Sample")
	return runSample(cfg, log, os.Stdout)
}

func runSample(cfg *utils.Config, log logger.Logger, w io.Writer) error {
	log.Infof("Read data file %v", cfg.ArgPath)
	data, err := population.Read(cfg.ArgPath)
	if err != nil {
		return err
	}
	s, err := interval.Summarize(data)
	if err != nil {
		return err
	}
	mode := cfg.Mode
	if mode == interval.Auto {
		mode = interval.SelectMode(s.N, false)
	}
	log.Noticef("Sample of %d observations, mean %.4f, std dev %.4f", s.N, s.Mean, s.StdDev)
	ci, err := interval.FromSummary(s, cfg.Confidence, mode)
	if err != nil {
		return err
	}
	report.PrintInterval(w, mode.String()+" interval", ci, cfg.Confidence)
	return nil
}

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
	"io"
	"os"

	"github.com/Fantom-foundation/Interval/interval"
	"github.com/Fantom-foundation/Interval/logger"
	"github.com/Fantom-foundation/Interval/report"
	"github.com/Fantom-foundation/Interval/utils"
	"github.com/urfave/cli/v2"
)

// EstimateCommand data structure for the estimate app.
var EstimateCommand = cli.Command{
	Action:    estimateAction,
	Name:      "estimate",
	Usage:     "computes a confidence interval from a sample summary",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.MeanFlag,
		&utils.StdDevFlag,
		&utils.SizeFlag,
		&utils.ConfidenceFlag,
		&utils.ModeFlag,
	},
	Description: `
The estimate command computes the interval mean ± critical value · std-dev / √size.
In normal mode the critical value is taken from the standard normal distribution,
in t mode from Student's t-distribution with size-1 degrees of freedom; auto mode
uses t up to a sample size of 100. In proportion mode --mean is the sample
proportion and --std-dev is ignored.`,
}

// estimateAction implements the estimate command.
func estimateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Estimate")
	return runEstimate(cfg, log, os.Stdout)
}

func runEstimate(cfg *utils.Config, log logger.Logger, w io.Writer) error {
	mode := cfg.Mode
	if mode == interval.Auto {
		mode = interval.SelectMode(cfg.Size, false)
		log.Debugf("Auto mode selected %v for sample size %d", mode, cfg.Size)
	}
	log.Infof("Compute %v interval with confidence %v", mode, cfg.Confidence)
	ci, err := interval.Compute(cfg.Mean, cfg.StdDev, cfg.Size, cfg.Confidence, mode)
	if err != nil {
		return err
	}
	report.PrintInterval(w, fmt.Sprintf("%v interval", mode), ci, cfg.Confidence)
	return nil
}

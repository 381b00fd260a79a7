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
	"github.com/Fantom-foundation/Interval/report"
	"github.com/Fantom-foundation/Interval/utils"
	"github.com/urfave/cli/v2"
)

// ProportionCommand data structure for the proportion app.
var ProportionCommand = cli.Command{
	Action:    proportionAction,
	Name:      "proportion",
	Usage:     "computes a confidence interval for a binomial proportion",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.SuccessesFlag,
		&utils.SizeFlag,
		&utils.ConfidenceFlag,
		&utils.WilsonFlag,
	},
	Description: `
The proportion command estimates the success probability of a binomial experiment
with --successes out of --size trials. The default normal approximation is only
reliable if size · p · (1-p) is at least 5; --wilson selects the Wilson score
interval, which also behaves for small samples.`,
}

// proportionAction implements the proportion command.
func proportionAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Proportion")
	return runProportion(cfg, log, os.Stdout)
}

func runProportion(cfg *utils.Config, log logger.Logger, w io.Writer) error {
	var (
		ci    interval.Interval
		err   error
		label string
	)
	if cfg.Wilson {
		log.Infof("Compute Wilson score interval for %d of %d", cfg.Successes, cfg.Size)
		ci, err = interval.Wilson(cfg.Successes, cfg.Size, cfg.Confidence)
		label = "Wilson interval"
	} else {
		log.Infof("Compute normal approximation interval for %d of %d", cfg.Successes, cfg.Size)
		ci, err = interval.ForProportion(cfg.Successes, cfg.Size, cfg.Confidence)
		label = "proportion interval"
	}
	if err != nil {
		return err
	}
	if !cfg.Wilson && !interval.ProportionPrecondition(cfg.Successes, cfg.Size) {
		log.Warning("Sample too small for the normal approximation; consider --wilson")
	}
	report.PrintInterval(w, label, ci, cfg.Confidence)
	return nil
}

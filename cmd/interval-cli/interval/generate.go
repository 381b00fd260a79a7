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
	"math/rand"
	"os"

	"github.com/Fantom-foundation/Interval/generator"
	"github.com/Fantom-foundation/Interval/logger"
	"github.com/Fantom-foundation/Interval/population"
	"github.com/Fantom-foundation/Interval/report"
	"github.com/Fantom-foundation/Interval/utils"
	"github.com/urfave/cli/v2"
)

// GenerateCommand data structure for the generate app.
var GenerateCommand = cli.Command{
	Action:    generateAction,
	Name:      "generate",
	Usage:     "draws repeated samples from a population and records their intervals",
	ArgsUsage: "[population-file]",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.SampleSizeFlag,
		&utils.TrialsFlag,
		&utils.ConfidenceFlag,
		&utils.RandomSeedFlag,
		&utils.PopulationSizeFlag,
		&utils.PopulationMeanFlag,
		&utils.PopulationStdDevFlag,
		&utils.OutputFlag,
	},
	Description: `
The generate command accepts one optional argument:
[population-file]

Without a population file a normally distributed population is synthesized from
--population-size, --population-mean and --population-std-dev. Each trial draws
--sample-size distinct elements and computes a normal interval around the sample
mean using the population standard deviation. The result is written as JSON to
--output (default ./intervals.json; a .gz suffix compresses it) and can be
plotted with the visualize command.`,
}

// generateAction implements the generate command.
func generateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OptionalPathArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Generate")
	return runGenerate(cfg, log, os.Stdout)
}

func runGenerate(cfg *utils.Config, log logger.Logger, w io.Writer) error {
	values, err := loadPopulation(cfg, log)
	if err != nil {
		return err
	}

	log.Infof("Draw %d samples of size %d with seed %d", cfg.Trials, cfg.SampleSize, cfg.RandomSeed)
	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	res, err := generator.Generate(values, cfg.SampleSize, cfg.Trials, cfg.Confidence, rng)
	if err != nil {
		return err
	}
	report.PrintTrials(w, res)
	report.PrintSummary(w, res)

	output := cfg.Output
	if output == "" {
		output = utils.DefaultResultFile
	}
	log.Noticef("Write intervals to %v", output)
	return res.WriteJSON(output)
}

// loadPopulation reads the population file if one is given and synthesizes
// a population otherwise.
func loadPopulation(cfg *utils.Config, log logger.Logger) ([]float64, error) {
	if cfg.ArgPath != "" {
		log.Infof("Read population file %v", cfg.ArgPath)
		return population.Read(cfg.ArgPath)
	}
	log.Infof("Synthesize population of %d elements, mean %v, std dev %v",
		cfg.PopulationSize, cfg.PopulationMean, cfg.PopulationStdDev)
	return population.Synthesize(cfg.PopulationSize, cfg.PopulationMean, cfg.PopulationStdDev, uint64(cfg.RandomSeed))
}

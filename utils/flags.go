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

package utils

import (
	"github.com/urfave/cli/v2"
)

// Command line options shared by the interval commands.
var (
	ConfidenceFlag = cli.Float64Flag{
		Name:    "confidence",
		Aliases: []string{"c"},
		Usage:   "confidence level of the interval, strictly between 0 and 1",
		Value:   0.95,
	}
	ModeFlag = cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "sampling distribution (\"normal\", \"t\", \"proportion\", \"auto\")",
		Value:   "auto",
	}
	MeanFlag = cli.Float64Flag{
		Name:  "mean",
		Usage: "sample mean (or sample proportion in proportion mode)",
	}
	StdDevFlag = cli.Float64Flag{
		Name:  "std-dev",
		Usage: "standard deviation; the population's in normal mode, the sample's in t mode",
	}
	SizeFlag = cli.IntFlag{
		Name:    "size",
		Aliases: []string{"n"},
		Usage:   "sample size, respectively number of trials of a binomial experiment",
	}
	SuccessesFlag = cli.IntFlag{
		Name:    "successes",
		Aliases: []string{"k"},
		Usage:   "number of successes of a binomial experiment",
	}
	WilsonFlag = cli.BoolFlag{
		Name:  "wilson",
		Usage: "use the Wilson score interval instead of the normal approximation",
	}
	SampleSizeFlag = cli.IntFlag{
		Name:  "sample-size",
		Usage: "number of elements drawn without replacement in each trial",
		Value: 30,
	}
	TrialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "number of repeated samples",
		Value: 100,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "Set random seed; a negative seed is replaced by the current time",
		Value: -1,
	}
	PopulationSizeFlag = cli.IntFlag{
		Name:  "population-size",
		Usage: "size of the synthesized population if no population file is given",
		Value: 10000,
	}
	PopulationMeanFlag = cli.Float64Flag{
		Name:  "population-mean",
		Usage: "mean of the synthesized population",
		Value: 0,
	}
	PopulationStdDevFlag = cli.Float64Flag{
		Name:  "population-std-dev",
		Usage: "standard deviation of the synthesized population",
		Value: 1,
	}
	OutputFlag = cli.PathFlag{
		Name:  "output",
		Usage: "output path",
	}
	PortFlag = cli.StringFlag{
		Name:        "port",
		Aliases:     []string{"v"},
		Usage:       "enable visualization on `PORT`",
		DefaultText: "8080",
	}
)

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
	"fmt"
	"os"
	"time"

	"github.com/Fantom-foundation/Interval/interval"
	"github.com/Fantom-foundation/Interval/logger"
	"github.com/urfave/cli/v2"
)

type ArgumentMode int

// An enums of argument modes used by the subcommands
const (
	NoArgs          ArgumentMode = iota // requires no arguments
	PathArg                             // requires 1 argument: path to file
	OptionalPathArg                     // accepts at most 1 argument: path to file
)

// Config summarizes the command line options of all commands.
type Config struct {
	AppName     string
	CommandName string

	ArgPath  string // path to file given as argument
	LogLevel string // level of the logging of the app action

	Confidence float64       // confidence level in (0, 1)
	Mode       interval.Mode // sampling distribution of the interval
	Mean       float64       // sample mean or proportion
	StdDev     float64       // standard deviation
	Size       int           // sample size or number of binomial trials
	Successes  int           // number of binomial successes
	Wilson     bool          // use the Wilson score interval for proportions

	SampleSize       int     // elements drawn per trial
	Trials           int     // number of repeated samples
	RandomSeed       int64   // seed of the random source
	PopulationSize   int     // size of a synthesized population
	PopulationMean   float64 // mean of a synthesized population
	PopulationStdDev float64 // standard deviation of a synthesized population

	Output string // output path
	Port   string // port of the visualization web server
}

// NewConfig creates and initializes Config with commandline arguments.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg, err := createConfigFromFlags(ctx)
	if err != nil {
		return nil, err
	}

	if err := cfg.setArgPath(ctx.Args().Slice(), mode); err != nil {
		return nil, err
	}

	// a negative seed requests a fresh one
	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = time.Now().UnixNano()
	}
	return cfg, nil
}

// createConfigFromFlags reads all flags; flags a command does not declare
// keep their zero value unless a default is set below.
func createConfigFromFlags(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		AppName:          ctx.App.HelpName,
		LogLevel:         ctx.String(logger.LogLevelFlag.Name),
		Confidence:       ctx.Float64(ConfidenceFlag.Name),
		Mean:             ctx.Float64(MeanFlag.Name),
		StdDev:           ctx.Float64(StdDevFlag.Name),
		Size:             ctx.Int(SizeFlag.Name),
		Successes:        ctx.Int(SuccessesFlag.Name),
		Wilson:           ctx.Bool(WilsonFlag.Name),
		SampleSize:       ctx.Int(SampleSizeFlag.Name),
		Trials:           ctx.Int(TrialsFlag.Name),
		RandomSeed:       ctx.Int64(RandomSeedFlag.Name),
		PopulationSize:   ctx.Int(PopulationSizeFlag.Name),
		PopulationMean:   ctx.Float64(PopulationMeanFlag.Name),
		PopulationStdDev: ctx.Float64(PopulationStdDevFlag.Name),
		Output:           ctx.Path(OutputFlag.Name),
		Port:             ctx.String(PortFlag.Name),
	}
	if ctx.Command != nil {
		cfg.CommandName = ctx.Command.Name
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	modeName := ctx.String(ModeFlag.Name)
	if modeName == "" {
		modeName = ModeFlag.Value
	}
	m, err := interval.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	cfg.Mode = m
	return cfg, nil
}

// setArgPath checks the number of positional arguments against the mode
// and records the path argument.
func (cfg *Config) setArgPath(args []string, mode ArgumentMode) error {
	switch mode {
	case NoArgs:
		if len(args) != 0 {
			return fmt.Errorf("command takes no arguments, got %v", args)
		}
		return nil
	case OptionalPathArg:
		if len(args) == 0 {
			return nil
		}
		if len(args) > 1 {
			return fmt.Errorf("command takes at most one path argument, got %v", args)
		}
	case PathArg:
		if len(args) != 1 {
			return fmt.Errorf("path argument is required to run this command")
		}
	default:
		return fmt.Errorf("unknown argument mode %d", mode)
	}

	_, err := os.Stat(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("given path (%v) argument does not exist", args[0])
		}
		return fmt.Errorf("cannot read argument path (%v)", err)
	}
	cfg.ArgPath = args[0]
	return nil
}

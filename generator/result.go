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

package generator

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fantom-foundation/Interval/utils"
	"github.com/Fantom-foundation/Interval/utils/analytics"
	"github.com/klauspost/compress/gzip"
)

// Result collects all trials of a repeated-sampling experiment together with
// the true population parameters.
type Result struct {
	PopulationMean   float64 `json:"populationMean"`
	PopulationStdDev float64 `json:"populationStdDev"`
	SampleSize       int     `json:"sampleSize"`
	Confidence       float64 `json:"confidence"`
	Trials           []Trial `json:"trials"`
}

// Generate draws trials samples of size sampleSize from the population and
// returns one normal-mode interval per trial, in trial order.
func Generate(population []float64, sampleSize, trials int, confidence float64, rng Source) (*Result, error) {
	it, err := NewIterator(population, sampleSize, trials, confidence, rng)
	if err != nil {
		return nil, err
	}
	res := &Result{
		PopulationMean:   it.PopulationMean(),
		PopulationStdDev: it.PopulationStdDev(),
		SampleSize:       sampleSize,
		Confidence:       confidence,
		Trials:           make([]Trial, 0, trials),
	}
	for it.Next() {
		res.Trials = append(res.Trials, it.Value())
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return res, nil
}

// Coverage is the fraction of trials whose interval contains the population
// mean. For many trials it approaches the confidence level.
func (r *Result) Coverage() float64 {
	if len(r.Trials) == 0 {
		return 0
	}
	covering := 0
	for _, t := range r.Trials {
		if t.Covers {
			covering++
		}
	}
	return float64(covering) / float64(len(r.Trials))
}

// Bounds returns the smallest lower and the largest upper bound over all
// trials, widened to include the population mean.
func (r *Result) Bounds() (float64, float64) {
	lo, hi := r.PopulationMean, r.PopulationMean
	for _, t := range r.Trials {
		lo = utils.Min(lo, t.Interval.Lower)
		hi = utils.Max(hi, t.Interval.Upper)
	}
	return lo, hi
}

// Widths summarises the interval widths of all trials.
func (r *Result) Widths() *analytics.IncrementalStats {
	s := analytics.NewIncrementalStats()
	for _, t := range r.Trials {
		s.Update(t.Interval.Width())
	}
	return s
}

// Means summarises the sample means of all trials.
func (r *Result) Means() *analytics.IncrementalStats {
	s := analytics.NewIncrementalStats()
	for _, t := range r.Trials {
		s.Update(t.Mean)
	}
	return s
}

// WriteJSON writes the result to a file; paths ending in .gz are gzipped.
func (r *Result) WriteJSON(filename string) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("cannot open result file %v; %w", filename, err)
	}
	var out io.WriteCloser = file
	if isGzip(filename) {
		out = gzip.NewWriter(file)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		file.Close()
		return fmt.Errorf("cannot encode result; %w", err)
	}
	if out != file {
		if err := out.Close(); err != nil {
			file.Close()
			return fmt.Errorf("cannot close gzip stream of result file; %w", err)
		}
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("cannot close result file; %w", err)
	}
	return nil
}

// ReadJSON reads a result written by WriteJSON.
func ReadJSON(filename string) (*Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open result file %v; %w", filename, err)
	}
	defer file.Close()

	var in io.Reader = file
	if isGzip(filename) {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("cannot open gzip stream of result file; %w", err)
		}
		defer zr.Close()
		in = zr
	}
	var r Result
	if err := json.NewDecoder(in).Decode(&r); err != nil {
		return nil, fmt.Errorf("cannot decode result file %v; %w", filename, err)
	}
	return &r, nil
}

func isGzip(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".gz")
}

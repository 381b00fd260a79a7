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
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned (wrapped) for every out-of-range input.
var ErrInvalidParameter = errors.New("invalid parameter")

// Interval is a closed range [Lower, Upper] estimating a population parameter.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// around builds the interval centre ± margin.
func around(centre, margin float64) Interval {
	return Interval{Lower: centre - margin, Upper: centre + margin}
}

func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// Margin is half the width, i.e. the critical value times the standard error.
func (i Interval) Margin() float64 {
	return i.Width() / 2
}

func (i Interval) Midpoint() float64 {
	return (i.Lower + i.Upper) / 2
}

// Contains reports whether x lies in the closed interval.
func (i Interval) Contains(x float64) bool {
	return i.Lower <= x && x <= i.Upper
}

func (i Interval) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", i.Lower, i.Upper)
}

// Compute returns the confidence interval for a sample of size n with the
// given mean and standard deviation.
//
// For Proportion, mean is the sample proportion and stdDev is ignored; the
// standard error is derived from the proportion itself. Auto treats stdDev as
// a sample standard deviation and picks T or Normal by sample size.
func Compute(mean, stdDev float64, n int, confidence float64, mode Mode) (Interval, error) {
	if mode == Auto {
		mode = SelectMode(n, false)
	}
	if !isFinite(mean) {
		return Interval{}, fmt.Errorf("mean %v is not a finite number: %w", mean, ErrInvalidParameter)
	}

	switch mode {
	case Normal, T:
		if !isFinite(stdDev) || stdDev < 0 {
			return Interval{}, fmt.Errorf("standard deviation %v must be finite and non-negative: %w", stdDev, ErrInvalidParameter)
		}
		c, err := CriticalValue(mode, confidence, n)
		if err != nil {
			return Interval{}, err
		}
		return around(mean, c*stdDev/math.Sqrt(float64(n))), nil

	case Proportion:
		if mean < 0 || mean > 1 {
			return Interval{}, fmt.Errorf("proportion %v outside [0, 1]: %w", mean, ErrInvalidParameter)
		}
		z, err := CriticalValue(Proportion, confidence, n)
		if err != nil {
			return Interval{}, err
		}
		return around(mean, z*math.Sqrt(mean*(1-mean)/float64(n))), nil
	}
	return Interval{}, fmt.Errorf("unsupported mode %v: %w", mode, ErrInvalidParameter)
}

// FromSummary computes the interval for a sample summary.
func FromSummary(s Summary, confidence float64, mode Mode) (Interval, error) {
	return Compute(s.Mean, s.StdDev, s.N, confidence, mode)
}

// FromSample summarises raw observations and computes their interval. In
// Proportion mode the observations are expected to be 0/1 outcomes.
func FromSample(data []float64, confidence float64, mode Mode) (Interval, error) {
	s, err := Summarize(data)
	if err != nil {
		return Interval{}, err
	}
	return FromSummary(s, confidence, mode)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

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

	"gonum.org/v1/gonum/stat"
)

// Summary holds the sample statistics an interval is computed from.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	N      int     `json:"n"`
}

// Summarize computes mean and unbiased standard deviation of a sample.
// A single observation has a standard deviation of zero.
func Summarize(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, fmt.Errorf("empty sample: %w", ErrInvalidParameter)
	}
	for i, x := range data {
		if !isFinite(x) {
			return Summary{}, fmt.Errorf("observation %d (%v) is not a finite number: %w", i, x, ErrInvalidParameter)
		}
	}
	if len(data) == 1 {
		return Summary{Mean: data[0], N: 1}, nil
	}
	mean, std := stat.MeanStdDev(data, nil)
	return Summary{Mean: mean, StdDev: std, N: len(data)}, nil
}

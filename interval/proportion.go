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
	"math"
)

// minProportionVariance is the customary lower bound on n·p̂·(1-p̂) for the
// normal approximation of a binomial proportion.
const minProportionVariance = 5.0

// ForProportion returns the normal-approximation (Wald) interval around the
// sample proportion successes/n. The approximation is only reliable when
// ProportionPrecondition holds; this is not enforced.
func ForProportion(successes, n int, confidence float64) (Interval, error) {
	p, err := sampleProportion(successes, n)
	if err != nil {
		return Interval{}, err
	}
	return Compute(p, 0, n, confidence, Proportion)
}

// ProportionPrecondition reports whether n·p̂·(1-p̂) is large enough for the
// normal approximation used by ForProportion.
func ProportionPrecondition(successes, n int) bool {
	p, err := sampleProportion(successes, n)
	if err != nil {
		return false
	}
	return float64(n)*p*(1-p) >= minProportionVariance
}

// Wilson returns the Wilson score interval for a binomial proportion. Unlike
// ForProportion it stays inside [0, 1] for small samples and extreme
// proportions, and it is centred on a shrunk estimate rather than on p̂.
func Wilson(successes, n int, confidence float64) (Interval, error) {
	p, err := sampleProportion(successes, n)
	if err != nil {
		return Interval{}, err
	}
	z, err := CriticalValue(Proportion, confidence, n)
	if err != nil {
		return Interval{}, err
	}
	fn := float64(n)
	z2 := z * z
	norm := 1 + z2/fn
	centre := (p + z2/(2*fn)) / norm
	margin := z * math.Sqrt(p*(1-p)/fn+z2/(4*fn*fn)) / norm
	ci := Interval{
		Lower: math.Max(0, centre-margin),
		Upper: math.Min(1, centre+margin),
	}
	// the bounds are exactly 0 and 1 at the extremes
	if successes == 0 {
		ci.Lower = 0
	}
	if successes == n {
		ci.Upper = 1
	}
	return ci, nil
}

func sampleProportion(successes, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("number of trials %d must be positive: %w", n, ErrInvalidParameter)
	}
	if successes < 0 || successes > n {
		return 0, fmt.Errorf("successes %d outside [0, %d]: %w", successes, n, ErrInvalidParameter)
	}
	return float64(successes) / float64(n), nil
}

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
	"strings"
)

// Mode selects the sampling distribution an interval is built from.
type Mode int

const (
	Normal     Mode = iota // standard normal, population standard deviation known
	T                      // Student's t with n-1 degrees of freedom
	Proportion             // normal approximation of a binomial proportion
	Auto                   // Normal for n > largeSampleSize, T otherwise
)

// largeSampleSize is the sample size above which the normal distribution
// replaces Student's t when the population standard deviation is unknown.
const largeSampleSize = 100

var modeNames = map[Mode]string{
	Normal:     "normal",
	T:          "t",
	Proportion: "proportion",
	Auto:       "auto",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a mode name (case insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "z":
		return Normal, nil
	case "student", "students-t":
		return T, nil
	}
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return Normal, fmt.Errorf("unknown mode %q: %w", s, ErrInvalidParameter)
}

// SelectMode picks Normal when the population standard deviation is known or
// the sample is large, and T otherwise.
func SelectMode(n int, populationStdDevKnown bool) Mode {
	if populationStdDevKnown || n > largeSampleSize {
		return Normal
	}
	return T
}

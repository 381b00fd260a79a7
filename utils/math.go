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
	"golang.org/x/exp/constraints"
)

// Min returns the smaller of s and t.
func Min[T constraints.Ordered](s, t T) T {
	if s < t {
		return s
	}
	return t
}

// Max returns the larger of s and t.
func Max[T constraints.Ordered](s, t T) T {
	if s > t {
		return s
	}
	return t
}

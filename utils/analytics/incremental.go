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

package analytics

import (
	"encoding/json"
	"math"

	"github.com/Fantom-foundation/Interval/utils"
)

// IncrementalStats keeps running moments of a stream of observations
// (Welford's update with a Kahan-compensated sum).
type IncrementalStats struct {
	count uint64
	min   float64
	max   float64

	ksum float64
	c    float64

	mean float64
	m2   float64
}

func NewIncrementalStats() *IncrementalStats {
	return &IncrementalStats{}
}

// Update adds one observation.
func (s *IncrementalStats) Update(x float64) {
	s.count++
	n := float64(s.count)

	delta := x - s.mean
	s.mean += delta / n
	s.m2 += delta * (x - s.mean)

	// kahan sum
	y := x - s.c
	z := s.ksum + y
	s.c = (z - s.ksum) - y
	s.ksum = z

	if s.count == 1 {
		s.min, s.max = x, x
		return
	}
	s.min = utils.Min(s.min, x)
	s.max = utils.Max(s.max, x)
}

func (s *IncrementalStats) GetCount() uint64 {
	return s.count
}

func (s *IncrementalStats) GetSum() float64 {
	return s.ksum
}

func (s *IncrementalStats) GetMean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.mean
}

// GetVariance is the unbiased sample variance; zero for fewer than two
// observations.
func (s *IncrementalStats) GetVariance() float64 {
	if s.count < 2 {
		return 0
	}
	return s.m2 / float64(s.count-1)
}

func (s *IncrementalStats) GetStandardDeviation() float64 {
	return math.Sqrt(s.GetVariance())
}

func (s *IncrementalStats) GetMin() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.min
}

func (s *IncrementalStats) GetMax() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.max
}

func (s *IncrementalStats) MarshalJSON() ([]byte, error) {
	if s.count == 0 {
		return json.Marshal(struct {
			Count uint64 `json:"count"`
		}{})
	}
	return json.Marshal(struct {
		Count  uint64  `json:"count"`
		Mean   float64 `json:"mean"`
		StdDev float64 `json:"stdDev"`
		Min    float64 `json:"min"`
		Max    float64 `json:"max"`
	}{s.count, s.mean, s.GetStandardDeviation(), s.min, s.max})
}

func (s *IncrementalStats) String() string {
	str, _ := json.Marshal(s)
	return string(str)
}

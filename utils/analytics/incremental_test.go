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
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestIncrementalStats_MatchesBatch(t *testing.T) {
	data := []float64{0.5, 1.25, -3, 8, 2.5, 2.5, 7.75, -1}
	s := NewIncrementalStats()
	for _, x := range data {
		s.Update(x)
	}
	if s.GetCount() != uint64(len(data)) {
		t.Fatalf("unexpected count %v", s.GetCount())
	}
	mean, std := stat.MeanStdDev(data, nil)
	if math.Abs(s.GetMean()-mean) > 1e-12 {
		t.Fatalf("unexpected mean %v; expected %v", s.GetMean(), mean)
	}
	if math.Abs(s.GetStandardDeviation()-std) > 1e-12 {
		t.Fatalf("unexpected standard deviation %v; expected %v", s.GetStandardDeviation(), std)
	}
	if s.GetMin() != -3 || s.GetMax() != 8 {
		t.Fatalf("unexpected range [%v, %v]", s.GetMin(), s.GetMax())
	}
	if s.GetSum() != 18.5 {
		t.Fatalf("unexpected sum %v", s.GetSum())
	}
}

func TestIncrementalStats_Empty(t *testing.T) {
	s := NewIncrementalStats()
	if !math.IsNaN(s.GetMean()) || !math.IsNaN(s.GetMin()) || !math.IsNaN(s.GetMax()) {
		t.Fatalf("empty statistics must report NaN")
	}
	if s.GetVariance() != 0 {
		t.Fatalf("empty statistics must have zero variance")
	}
	if s.String() != `{"count":0}` {
		t.Fatalf("unexpected json %v", s.String())
	}
}

func TestIncrementalStats_SingleNegativeObservation(t *testing.T) {
	s := NewIncrementalStats()
	s.Update(-2)
	if s.GetMin() != -2 || s.GetMax() != -2 {
		t.Fatalf("unexpected range [%v, %v]", s.GetMin(), s.GetMax())
	}
	if s.String() != `{"count":1,"mean":-2,"stdDev":0,"min":-2,"max":-2}` {
		t.Fatalf("unexpected json %v", s.String())
	}
}

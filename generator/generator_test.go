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
	"errors"
	"math"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/Fantom-foundation/Interval/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newPopulation creates a normally distributed population with a fixed seed.
func newPopulation(size int, mean, stdDev float64) []float64 {
	rg := rand.New(rand.NewSource(7))
	population := make([]float64, size)
	for i := range population {
		population[i] = mean + stdDev*rg.NormFloat64()
	}
	return population
}

// TestGenerate_Reproducible checks that a fixed seed yields the same trials.
func TestGenerate_Reproducible(t *testing.T) {
	population := newPopulation(1000, 50, 8)

	first, err := Generate(population, 30, 100, 0.95, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := Generate(population, 30, 100, 0.95, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := Generate(population, 30, 100, 0.95, rand.New(rand.NewSource(43)))
	require.NoError(t, err)
	assert.NotEqual(t, first.Trials, other.Trials)
}

// TestGenerate_Coverage checks that the share of intervals covering the
// population mean is close to the confidence level.
func TestGenerate_Coverage(t *testing.T) {
	population := newPopulation(10000, 10, 2)
	for _, confidence := range []float64{0.8, 0.9, 0.95} {
		res, err := Generate(population, 50, 2000, confidence, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		require.Len(t, res.Trials, 2000)
		if math.Abs(res.Coverage()-confidence) > 0.03 {
			t.Fatalf("coverage %v too far from confidence level %v", res.Coverage(), confidence)
		}
	}
}

func TestGenerate_TrialsUseNormalModeWithPopulationDeviation(t *testing.T) {
	population := newPopulation(500, 3, 1)
	res, err := Generate(population, 20, 50, 0.9, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for i, trial := range res.Trials {
		assert.Equal(t, i, trial.Index)
		want, err := interval.Compute(trial.Mean, res.PopulationStdDev, 20, 0.9, interval.Normal)
		require.NoError(t, err)
		assert.Equal(t, want, trial.Interval)
		assert.Equal(t, trial.Interval.Contains(res.PopulationMean), trial.Covers)
	}
}

func TestIterator_MatchesGenerate(t *testing.T) {
	population := newPopulation(200, 0, 1)
	res, err := Generate(population, 10, 25, 0.9, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	it, err := NewIterator(population, 10, 25, 0.9, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	i := 0
	for it.Next() {
		assert.Equal(t, res.Trials[i], it.Value())
		i++
	}
	require.NoError(t, it.Error())
	assert.Equal(t, 25, i)
	assert.False(t, it.Next())
}

// TestIterator_SamplesWithoutReplacement drives the shuffle with a mocked
// random source and checks which elements end up in the sample.
func TestIterator_SamplesWithoutReplacement(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := NewMockSource(ctrl)
	population := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	gomock.InOrder(
		// first trial picks positions 9, 1, 2
		rng.EXPECT().Intn(10).Return(9),
		rng.EXPECT().Intn(9).Return(0),
		rng.EXPECT().Intn(8).Return(0),
		// second trial swaps position 0 back into the sample
		rng.EXPECT().Intn(10).Return(0),
		rng.EXPECT().Intn(9).Return(8),
		rng.EXPECT().Intn(8).Return(0),
	)

	it, err := NewIterator(population, 3, 2, 0.9, rng)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, it.PopulationMean(), 1e-12)
	assert.InDelta(t, math.Sqrt(8.25), it.PopulationStdDev(), 1e-12)

	require.True(t, it.Next())
	assert.InDelta(t, (10.0+2+3)/3, it.Value().Mean, 1e-12)
	assert.True(t, it.Value().Covers)

	require.True(t, it.Next())
	assert.InDelta(t, (10.0+1+3)/3, it.Value().Mean, 1e-12)
	assert.Equal(t, 1, it.Value().Index)

	assert.False(t, it.Next())
	assert.NoError(t, it.Error())
}

func TestGenerate_FullPopulationSampleIsExact(t *testing.T) {
	population := []float64{4, 8, 15, 16, 23, 42}
	res, err := Generate(population, len(population), 3, 0.95, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	for _, trial := range res.Trials {
		// every sample is the whole population, so its mean is exact
		assert.InDelta(t, res.PopulationMean, trial.Mean, 1e-12)
		assert.True(t, trial.Covers)
	}
	assert.Equal(t, 1.0, res.Coverage())
}

func TestGenerate_InvalidParameters(t *testing.T) {
	population := []float64{1, 2, 3, 4, 5}
	rg := rand.New(rand.NewSource(1))
	tests := []struct {
		name       string
		population []float64
		sampleSize int
		trials     int
		confidence float64
		rng        Source
	}{
		{"sample larger than population", population, 6, 10, 0.9, rg},
		{"empty population", nil, 1, 10, 0.9, rg},
		{"zero sample size", population, 0, 10, 0.9, rg},
		{"zero trials", population, 2, 0, 0.9, rg},
		{"confidence one", population, 2, 10, 1.0, rg},
		{"confidence zero", population, 2, 10, 0, rg},
		{"missing source", population, 2, 10, 0.9, nil},
		{"non-finite population", []float64{1, math.NaN()}, 1, 10, 0.9, rg},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Generate(test.population, test.sampleSize, test.trials, test.confidence, test.rng)
			if !errors.Is(err, interval.ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestResult_BoundsAndSummaries(t *testing.T) {
	res := &Result{
		PopulationMean: 5,
		Trials: []Trial{
			{Index: 0, Mean: 4, Interval: interval.Interval{Lower: 3, Upper: 5}, Covers: true},
			{Index: 1, Mean: 7, Interval: interval.Interval{Lower: 6, Upper: 8}},
			{Index: 2, Mean: 5, Interval: interval.Interval{Lower: 4, Upper: 6}, Covers: true},
		},
	}
	lo, hi := res.Bounds()
	assert.Equal(t, 3.0, lo)
	assert.Equal(t, 8.0, hi)
	assert.InDelta(t, 2.0/3.0, res.Coverage(), 1e-12)
	assert.Equal(t, 2.0, res.Widths().GetMean())
	assert.Equal(t, uint64(3), res.Means().GetCount())
	assert.InDelta(t, 16.0/3.0, res.Means().GetMean(), 1e-12)

	assert.Equal(t, 0.0, (&Result{}).Coverage())
}

func TestResult_JSONRoundTrip(t *testing.T) {
	res, err := Generate(newPopulation(100, 1, 1), 5, 10, 0.9, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	for _, name := range []string{"intervals.json", "intervals.json.gz"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, res.WriteJSON(path))
		got, err := ReadJSON(path)
		require.NoError(t, err)
		assert.Equal(t, res, got)
	}

	_, err = ReadJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

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

//go:generate mockgen -source iterator.go -destination source_mocks.go -package generator

import (
	"fmt"
	"math"

	"github.com/Fantom-foundation/Interval/interval"
	"gonum.org/v1/gonum/stat"
)

// Source is the random source samples are drawn with. *math/rand.Rand
// satisfies it; seeding the source makes every trial reproducible.
type Source interface {
	// Intn returns a uniformly distributed number in [0, n).
	Intn(n int) int
}

// Trial is the outcome of one repeated-sampling round.
type Trial struct {
	Index    int               `json:"index"`
	Mean     float64           `json:"mean"`
	Interval interval.Interval `json:"interval"`
	Covers   bool              `json:"covers"` // interval contains the population mean
}

// Iterator lazily produces trials. Each trial draws sampleSize elements
// without replacement from the population and builds a normal-mode interval
// using the population standard deviation.
type Iterator struct {
	population []float64
	sampleSize int
	trials     int
	confidence float64
	rng        Source

	popMean   float64
	popStdDev float64

	// index is a permutation of population positions; its first sampleSize
	// entries select the current sample.
	index  []int
	sample []float64

	next    int
	current Trial
	err     error
}

// NewIterator validates the parameters and creates an iterator producing
// the given number of trials.
func NewIterator(population []float64, sampleSize, trials int, confidence float64, rng Source) (*Iterator, error) {
	if len(population) == 0 {
		return nil, fmt.Errorf("empty population: %w", interval.ErrInvalidParameter)
	}
	if sampleSize < 1 {
		return nil, fmt.Errorf("sample size %d must be positive: %w", sampleSize, interval.ErrInvalidParameter)
	}
	if sampleSize > len(population) {
		return nil, fmt.Errorf("sample size %d exceeds population size %d: %w", sampleSize, len(population), interval.ErrInvalidParameter)
	}
	if trials < 1 {
		return nil, fmt.Errorf("number of trials %d must be positive: %w", trials, interval.ErrInvalidParameter)
	}
	if rng == nil {
		return nil, fmt.Errorf("missing random source: %w", interval.ErrInvalidParameter)
	}
	// fail early on a bad confidence level instead of in the first trial
	if _, err := interval.CriticalValue(interval.Normal, confidence, sampleSize); err != nil {
		return nil, err
	}
	for i, x := range population {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("population element %d (%v) is not a finite number: %w", i, x, interval.ErrInvalidParameter)
		}
	}

	mean, variance := stat.PopMeanVariance(population, nil)
	index := make([]int, len(population))
	for i := range index {
		index[i] = i
	}
	return &Iterator{
		population: population,
		sampleSize: sampleSize,
		trials:     trials,
		confidence: confidence,
		rng:        rng,
		popMean:    mean,
		popStdDev:  math.Sqrt(variance),
		index:      index,
		sample:     make([]float64, sampleSize),
	}, nil
}

// Next computes the next trial; it returns false when all trials have been
// produced or an error occurred.
func (it *Iterator) Next() bool {
	if it.err != nil || it.next >= it.trials {
		return false
	}
	it.draw()
	mean := stat.Mean(it.sample, nil)
	ci, err := interval.Compute(mean, it.popStdDev, it.sampleSize, it.confidence, interval.Normal)
	if err != nil {
		it.err = err
		return false
	}
	it.current = Trial{
		Index:    it.next,
		Mean:     mean,
		Interval: ci,
		Covers:   ci.Contains(it.popMean),
	}
	it.next++
	return true
}

// Value returns the trial produced by the last successful call of Next.
func (it *Iterator) Value() Trial {
	return it.current
}

func (it *Iterator) Error() error {
	return it.err
}

func (it *Iterator) PopulationMean() float64 {
	return it.popMean
}

func (it *Iterator) PopulationStdDev() float64 {
	return it.popStdDev
}

// draw selects a sample without replacement by a partial Fisher-Yates
// shuffle of the index permutation.
func (it *Iterator) draw() {
	n := len(it.index)
	for i := 0; i < it.sampleSize; i++ {
		j := i + it.rng.Intn(n-i)
		it.index[i], it.index[j] = it.index[j], it.index[i]
		it.sample[i] = it.population[it.index[i]]
	}
}

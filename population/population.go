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

// Package population loads, stores and synthesizes the populations that
// repeated-sampling experiments draw from.
package population

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/Fantom-foundation/Interval/interval"
	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Read parses a population file. Values are separated by white space or
// commas; everything after a '#' on a line is a comment. Files ending in .gz
// or .bz2 are decompressed on the fly.
func Read(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open population file %v; %w", filename, err)
	}
	defer file.Close()

	var in io.Reader = file
	switch ext(filename) {
	case ".gz":
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("cannot open gzip stream of population file; %w", err)
		}
		defer zr.Close()
		in = zr
	case ".bz2":
		zr, err := bzip2.NewReader(file, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, fmt.Errorf("cannot open bzip2 stream of population file; %w", err)
		}
		defer zr.Close()
		in = zr
	}
	return parse(in)
}

func parse(in io.Reader) ([]float64, error) {
	values := []float64{}
	scanner := bufio.NewScanner(in)
	isSeparator := func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, field := range strings.FieldsFunc(text, isSeparator) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: cannot parse %q as a number; %w", line, field, err)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read population; %w", err)
	}
	return values, nil
}

// Write stores a population with one value per line, compressed according to
// the file extension (.gz or .bz2).
func Write(filename string, values []float64) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("cannot open population file %v; %w", filename, err)
	}

	var zw io.WriteCloser
	switch ext(filename) {
	case ".gz":
		zw = gzip.NewWriter(file)
	case ".bz2":
		zw, err = bzip2.NewWriter(file, &bzip2.WriterConfig{Level: 9})
		if err != nil {
			file.Close()
			return fmt.Errorf("cannot open bzip2 stream of population file; %w", err)
		}
	}

	var out io.Writer = file
	if zw != nil {
		out = zw
	}
	w := bufio.NewWriter(out)
	for _, v := range values {
		w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("cannot write population; %w", err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			file.Close()
			return fmt.Errorf("cannot close compressed stream of population file; %w", err)
		}
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("cannot close population file; %w", err)
	}
	return nil
}

// Synthesize draws a normally distributed population of the given size.
// The same seed always produces the same population.
func Synthesize(size int, mean, stdDev float64, seed uint64) ([]float64, error) {
	if size < 1 {
		return nil, fmt.Errorf("population size %d must be positive: %w", size, interval.ErrInvalidParameter)
	}
	if !(stdDev > 0) {
		return nil, fmt.Errorf("population standard deviation %v must be positive: %w", stdDev, interval.ErrInvalidParameter)
	}
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: stdDev,
		Src:   rand.NewSource(seed),
	}
	values := make([]float64, size)
	for i := range values {
		values[i] = dist.Rand()
	}
	return values, nil
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

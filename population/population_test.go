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

package population

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Interval/interval"
	"gonum.org/v1/gonum/stat"
)

// TestReadWrite_Compression writes and reads a population in every
// supported container format.
func TestReadWrite_Compression(t *testing.T) {
	values := []float64{1.5, -2, 3e10, 0.1, 42, math.SmallestNonzeroFloat64}
	for _, name := range []string{"population.txt", "population.gz", "population.txt.GZ", "population.bz2"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Write(path, values); err != nil {
			t.Fatalf("%v: failed to write population. Error: %v", name, err)
		}
		got, err := Read(path)
		if err != nil {
			t.Fatalf("%v: failed to read population. Error: %v", name, err)
		}
		if len(got) != len(values) {
			t.Fatalf("%v: expected %d values, got %d", name, len(values), len(got))
		}
		for i := range values {
			if got[i] != values[i] {
				t.Fatalf("%v: value %d differs; expected %v, got %v", name, i, values[i], got[i])
			}
		}
	}
}

func TestParse_SeparatorsAndComments(t *testing.T) {
	in := `# heights in cm
172.5, 180 165.2
	# blank lines and indented comments are skipped

158,191 # trailing comment
`
	got, err := parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{172.5, 180, 165.2, 158, 191}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParse_ReportsLine(t *testing.T) {
	_, err := parse(strings.NewReader("1 2\n3 four\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected error on line 2, got %v", err)
	}
}

func TestRead_MissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()
	if _, err := Read(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	path := filepath.Join(dir, "broken.gz")
	if err := os.WriteFile(path, []byte("not compressed"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Fatalf("expected error for corrupt gzip file")
	}
}

func TestSynthesize(t *testing.T) {
	first, err := Synthesize(20000, 170, 10, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Synthesize(20000, 170, 10, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different populations at %d", i)
		}
	}
	mean, std := stat.MeanStdDev(first, nil)
	if math.Abs(mean-170) > 0.5 || math.Abs(std-10) > 0.5 {
		t.Fatalf("unexpected moments: mean %v, standard deviation %v", mean, std)
	}
}

func TestSynthesize_Invalid(t *testing.T) {
	if _, err := Synthesize(0, 0, 1, 1); !errors.Is(err, interval.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if _, err := Synthesize(10, 0, 0, 1); !errors.Is(err, interval.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

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

package visualizer

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Interval/generator"
	"github.com/Fantom-foundation/Interval/interval"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func newResult(t *testing.T) *generator.Result {
	population := make([]float64, 300)
	for i := range population {
		population[i] = float64(i%37) - 10
	}
	res, err := generator.Generate(population, 15, 40, 0.9, rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("failed to generate intervals. Error: %v", err)
	}
	return res
}

func TestConvertIntervals_EncodesCoverageAsDirection(t *testing.T) {
	res := &generator.Result{
		Trials: []generator.Trial{
			{Index: 0, Interval: interval.Interval{Lower: -1, Upper: 2}, Covers: true},
			{Index: 1, Interval: interval.Interval{Lower: 3, Upper: 4}},
		},
	}
	labels, items := convertIntervals(res)
	if len(labels) != 2 || labels[0] != "#1" || labels[1] != "#2" {
		t.Fatalf("unexpected labels %v", labels)
	}
	want := []opts.KlineData{
		{Value: [4]float64{-1, 2, -1, 2}},
		{Value: [4]float64{4, 3, 3, 4}},
	}
	for i := range want {
		if items[i].Value != want[i].Value {
			t.Fatalf("item %d: expected %v, got %v", i, want[i].Value, items[i].Value)
		}
	}
}

func TestRender_ContainsAllCharts(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, newResult(t)); err != nil {
		t.Fatalf("failed to render page. Error: %v", err)
	}
	page := buf.String()
	for _, fragment := range []string{"Confidence Intervals", "population mean", "Critical Values", "Student-t, df=14"} {
		if !strings.Contains(page, fragment) {
			t.Fatalf("rendered page misses %q", fragment)
		}
	}
}

func TestChartConstructors_RejectInvalidParameters(t *testing.T) {
	if _, err := NewCriticalValueChart(1.0, 10); !errors.Is(err, interval.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if _, err := NewCriticalValueChart(0.9, 0); !errors.Is(err, interval.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if _, err := NewDensityChart(0); !errors.Is(err, interval.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestHandler_ServesPages(t *testing.T) {
	server := httptest.NewServer(NewHandler(newResult(t)))
	defer server.Close()

	tests := map[string]string{
		"/":                "Repeated Sampling",
		"/" + intervalsRef: "Confidence Intervals",
		"/" + criticalRef:  "Critical Values",
		"/" + densityRef:   "Sampling Distributions",
	}
	for path, fragment := range tests {
		resp, err := http.Get(server.URL + path)
		if err != nil {
			t.Fatalf("%v: request failed. Error: %v", path, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("%v: cannot read body. Error: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%v: unexpected status %v", path, resp.Status)
		}
		if !strings.Contains(string(body), fragment) {
			t.Fatalf("%v: page misses %q", path, fragment)
		}
	}

	resp, err := http.Get(server.URL + "/unknown")
	if err != nil {
		t.Fatalf("request failed. Error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected not found, got %v", resp.Status)
	}
}

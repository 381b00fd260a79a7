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
	"fmt"

	"github.com/Fantom-foundation/Interval/generator"
	"github.com/Fantom-foundation/Interval/interval"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	coverColor = "#3ba272" // interval contains the population mean
	missColor  = "#ee6666" // interval misses the population mean

	densityRange = 4.0 // densities are plotted on [-densityRange, densityRange]
	densitySteps = 160
)

// globalOptions are the chart options shared by all charts.
func globalOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeChalk,
			PageTitle: title,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	}
}

// convertIntervals encodes each interval as a candlestick spanning the
// interval. Covering intervals are rising candles (open at the lower bound)
// and missing intervals falling ones, so the two get different colors.
func convertIntervals(res *generator.Result) ([]string, []opts.KlineData) {
	labels := make([]string, 0, len(res.Trials))
	items := make([]opts.KlineData, 0, len(res.Trials))
	for _, t := range res.Trials {
		lo, hi := t.Interval.Lower, t.Interval.Upper
		first, last := lo, hi
		if !t.Covers {
			first, last = hi, lo
		}
		labels = append(labels, fmt.Sprintf("#%d", t.Index+1))
		items = append(items, opts.KlineData{Value: [4]float64{first, last, lo, hi}})
	}
	return labels, items
}

// NewIntervalChart draws one vertical bar per trial spanning its interval,
// with a horizontal line at the population mean.
func NewIntervalChart(res *generator.Result) *charts.Kline {
	chart := charts.NewKLine()
	subtitle := fmt.Sprintf("%d trials, sample size %d, %.0f%% confidence, %.1f%% cover the population mean",
		len(res.Trials), res.SampleSize, 100*res.Confidence, 100*res.Coverage())
	chart.SetGlobalOptions(globalOptions("Confidence Intervals", subtitle)...)
	lo, hi := res.Bounds()
	chart.SetGlobalOptions(
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "value",
			Scale: true,
			Min:   lo,
			Max:   hi,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
	)

	labels, items := convertIntervals(res)
	chart.SetXAxis(labels).AddSeries("interval", items,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:        coverColor,
			Color0:       missColor,
			BorderColor:  coverColor,
			BorderColor0: missColor,
		}),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "population mean",
			YAxis: res.PopulationMean,
		}),
	)
	return chart
}

// NewCriticalValueChart compares the Student-t critical value for 1 to maxDf
// degrees of freedom with the normal critical value.
func NewCriticalValueChart(confidence float64, maxDf int) (*charts.Line, error) {
	if maxDf < 1 {
		return nil, fmt.Errorf("maximum degrees of freedom %d must be positive: %w", maxDf, interval.ErrInvalidParameter)
	}
	z, err := interval.CriticalValue(interval.Normal, confidence, 1)
	if err != nil {
		return nil, err
	}
	dfs := make([]int, 0, maxDf)
	tItems := make([]opts.LineData, 0, maxDf)
	zItems := make([]opts.LineData, 0, maxDf)
	for df := 1; df <= maxDf; df++ {
		t, err := interval.CriticalValue(interval.T, confidence, df+1)
		if err != nil {
			return nil, err
		}
		dfs = append(dfs, df)
		tItems = append(tItems, opts.LineData{Value: t})
		zItems = append(zItems, opts.LineData{Value: z})
	}

	chart := charts.NewLine()
	chart.SetGlobalOptions(globalOptions("Critical Values",
		fmt.Sprintf("two-tailed, %.0f%% confidence, by degrees of freedom", 100*confidence))...)
	chart.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: "critical value", Scale: true}))
	chart.SetXAxis(dfs).
		AddSeries("Student-t", tItems).
		AddSeries(fmt.Sprintf("normal, z=%.3f", z), zItems)
	return chart, nil
}

// convertDensity samples a probability density on an equidistant grid.
func convertDensity(pdf func(float64) float64) []opts.LineData {
	items := make([]opts.LineData, 0, densitySteps+1)
	for i := 0; i <= densitySteps; i++ {
		x := -densityRange + 2*densityRange*float64(i)/densitySteps
		items = append(items, opts.LineData{Value: [2]float64{x, pdf(x)}})
	}
	return items
}

// NewDensityChart plots the standard normal density against the Student-t
// density with df degrees of freedom; the heavier tails of the latter are
// why t-intervals are wider.
func NewDensityChart(df int) (*charts.Line, error) {
	if df < 1 {
		return nil, fmt.Errorf("degrees of freedom %d must be positive: %w", df, interval.ErrInvalidParameter)
	}
	chart := charts.NewLine()
	chart.SetGlobalOptions(globalOptions("Sampling Distributions",
		fmt.Sprintf("standard normal and Student-t with %d degrees of freedom", df))...)
	chart.SetGlobalOptions(charts.WithXAxisOpts(opts.XAxis{Type: "value"}))
	student := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	chart.AddSeries("normal", convertDensity(distuv.UnitNormal.Prob)).
		AddSeries(fmt.Sprintf("Student-t, df=%d", df), convertDensity(student.Prob))
	return chart, nil
}

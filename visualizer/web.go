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
	"io"
	"net/http"

	"github.com/Fantom-foundation/Interval/generator"
	"github.com/go-echarts/go-echarts/v2/components"
)

// HTML references for the rendered pages.
const intervalsRef = "intervals"
const criticalRef = "critical-values"
const densityRef = "distributions"

// maxCriticalDf bounds the x-axis of the critical value chart.
const maxCriticalDf = 60

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Interval: Repeated Sampling</title>
  </head>
  <body>
    <h1>Interval: Repeated Sampling</h1>
    <ul>
    <li> <h3> <a href="/` + intervalsRef + `"> Confidence Intervals </a> </h3> </li>
    <li> <h3> <a href="/` + criticalRef + `"> Critical Values </a> </h3> </li>
    <li> <h3> <a href="/` + densityRef + `"> Sampling Distributions </a> </h3> </li>
    </ul>
</body>
</html>
`

// Render writes a single page with all charts of a result.
func Render(w io.Writer, res *generator.Result) error {
	critical, err := NewCriticalValueChart(res.Confidence, maxCriticalDf)
	if err != nil {
		return err
	}
	density, err := NewDensityChart(degreesOfFreedom(res))
	if err != nil {
		return err
	}
	page := components.NewPage()
	page.PageTitle = "Interval: Repeated Sampling"
	page.AddCharts(NewIntervalChart(res), critical, density)
	return page.Render(w)
}

// degreesOfFreedom of the t-distribution matching the result's sample size.
func degreesOfFreedom(res *generator.Result) int {
	if res.SampleSize < 2 {
		return 1
	}
	return res.SampleSize - 1
}

// NewHandler returns the HTTP handler serving the index and chart pages.
func NewHandler(res *generator.Result) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, MainHtml)
	})
	mux.HandleFunc("/"+intervalsRef, func(w http.ResponseWriter, r *http.Request) {
		NewIntervalChart(res).Render(w)
	})
	mux.HandleFunc("/"+criticalRef, func(w http.ResponseWriter, r *http.Request) {
		chart, err := NewCriticalValueChart(res.Confidence, maxCriticalDf)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		chart.Render(w)
	})
	mux.HandleFunc("/"+densityRef, func(w http.ResponseWriter, r *http.Request) {
		chart, err := NewDensityChart(degreesOfFreedom(res))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		chart.Render(w)
	})
	return mux
}

// FireUpWeb fires up a new web-server for data visualisation. It blocks
// until the server fails.
func FireUpWeb(res *generator.Result, port string) error {
	return http.ListenAndServe(":"+port, NewHandler(res))
}

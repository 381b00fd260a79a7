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

// Package report prints intervals and repeated-sampling results as text.
package report

import (
	"fmt"
	"io"
	"log"

	"github.com/Fantom-foundation/Interval/generator"
	"github.com/Fantom-foundation/Interval/interval"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// PrintInterval prints a single interval with its estimate and margin.
func PrintInterval(w io.Writer, label string, ci interval.Interval, confidence float64) {
	bold := color.New(color.Bold).SprintfFunc()
	output(w, "%s:\t%s\n", label, bold("%.0f%% CI %v", 100*confidence, ci))
	output(w, "Estimate:\t%s\n", bold("%.4f", ci.Midpoint()))
	output(w, "Margin:\t\t%s\n", bold("±%.4f", ci.Margin()))
}

// PrintTrials sends a table with one row per trial to the writer; trials
// whose interval misses the population mean are highlighted.
func PrintTrials(w io.Writer, res *generator.Result) {
	miss := color.New(color.FgRed).SprintFunc()

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Trial", "Mean", "Lower", "Upper", "Covers"})
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, t := range res.Trials {
		row := []string{
			fmt.Sprintf("%d", t.Index+1),
			fmt.Sprintf("%.4f", t.Mean),
			fmt.Sprintf("%.4f", t.Interval.Lower),
			fmt.Sprintf("%.4f", t.Interval.Upper),
			"yes",
		}
		if !t.Covers {
			for i := range row {
				row[i] = miss(row[i])
			}
			row[4] = miss("no")
		}
		tbl.Append(row)
	}
	tbl.Render()
}

// PrintSummary prints the population parameters and the observed coverage.
func PrintSummary(w io.Writer, res *generator.Result) {
	bold := color.New(color.Bold).SprintfFunc()
	colored := color.New(color.FgBlue, color.Bold).SprintfFunc()

	covering := 0
	for _, t := range res.Trials {
		if t.Covers {
			covering++
		}
	}
	widths := res.Widths()
	means := res.Means()

	output(w, "Population mean:\t%s\n", bold("%.4f", res.PopulationMean))
	output(w, "Population std dev:\t%s\n", bold("%.4f", res.PopulationStdDev))
	output(w, "Sample size:\t\t%s\n", bold("%s", printer.Sprintf("%d", res.SampleSize)))
	output(w, "Mean of sample means:\t%s\n", bold("%.4f", means.GetMean()))
	output(w, "Mean interval width:\t%s\n", bold("%.4f", widths.GetMean()))
	output(w, "Coverage:\t\t%s\n", colored("%s", printer.Sprintf("%d of %d trials (%.1f%%, nominal %.1f%%)",
		covering, len(res.Trials), 100*res.Coverage(), 100*res.Confidence)))
}

// output the given message with formatting.
func output(w io.Writer, format string, a ...any) {
	_, err := fmt.Fprintf(w, format, a...)
	if err != nil {
		log.Println("output error", err.Error())
	}
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	"github.com/modelbench/umlcmp/internal/reporting"
)

const reportWidth = 70

// printReport renders the full comparison report as console text: the two
// presence listings, the metrics table, score statistics, and the best
// model.
func printReport(w io.Writer, report *reporting.Report) {
	printSectionHeader(w, "CLASS COMPARISON")
	if len(report.Classes) == 0 {
		fmt.Fprintln(w, "  (no classes)") //nolint:errcheck
	}
	nameWidth := 0
	for _, row := range report.Classes {
		if cw := runewidth.StringWidth(row.Class); cw > nameWidth {
			nameWidth = cw
		}
	}
	for _, row := range report.Classes {
		fmt.Fprintf(w, "  %s  present in: %s\n", //nolint:errcheck
			padRight(row.Class, nameWidth), strings.Join(row.Models, ", "))
	}
	fmt.Fprintln(w) //nolint:errcheck

	printSectionHeader(w, "RELATIONSHIP COMPARISON")
	if len(report.Relationships) == 0 {
		fmt.Fprintln(w, "  (no relationships)") //nolint:errcheck
	}
	relWidth := 0
	relLabels := make([]string, len(report.Relationships))
	for i, row := range report.Relationships {
		relLabels[i] = fmt.Sprintf("%s -[%s]-> %s", row.From, row.Label, row.To)
		if rw := runewidth.StringWidth(relLabels[i]); rw > relWidth {
			relWidth = rw
		}
	}
	for i, row := range report.Relationships {
		fmt.Fprintf(w, "  %s  present in: %s\n", //nolint:errcheck
			padRight(relLabels[i], relWidth), strings.Join(row.Models, ", "))
	}
	fmt.Fprintln(w) //nolint:errcheck

	printSectionHeader(w, "MODEL METRICS")
	printMetricsTable(w, report)
	fmt.Fprintln(w) //nolint:errcheck

	stats := report.Statistics
	fmt.Fprintf(w, "  Scores: mean=%.3f stddev=%.3f min=%.3f max=%.3f spread=%.3f\n\n", //nolint:errcheck
		stats.Mean, stats.StdDev, stats.Min, stats.Max, stats.Spread)

	fmt.Fprintf(w, "The BEST model is: %s\n\n", report.BestModel) //nolint:errcheck
}

func printMetricsTable(w io.Writer, report *reporting.Report) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{
		"Model", "Recall Cls", "Prec Cls", "Recall Rel", "Prec Rel", "Overlap", "Total",
	})
	for _, row := range report.Metrics {
		tw.AppendRow(table.Row{
			row.Model,
			formatScore(row.RecallClasses),
			formatScore(row.PrecisionClasses),
			formatScore(row.RecallRelationships),
			formatScore(row.PrecisionRelationships),
			formatScore(row.OverlapScore),
			formatScore(row.TotalScore),
		})
	}
	tw.Render()
}

func printSectionHeader(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", reportWidth)) //nolint:errcheck
	fmt.Fprintf(w, " %s\n", title)                    //nolint:errcheck
	fmt.Fprintln(w, strings.Repeat("=", reportWidth)) //nolint:errcheck
}

// formatScore formats a metric to 3 decimal places, matching the CSV.
func formatScore(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

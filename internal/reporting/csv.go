package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// CSV section headers. The layout — three sections separated by blank rows
// plus a final Best Model row — is the interchange format consumers of the
// results file already parse; keep it stable.
var (
	classHeader        = []string{"Class", "Present In Models"}
	relationshipHeader = []string{"From", "To", "Label", "Present In Models"}
	metricsHeader      = []string{
		"Model",
		"Recall Classes",
		"Precision Classes",
		"Recall Relationships",
		"Precision Relationships",
		"Overlap Score",
		"Total Score",
	}
)

// MarshalCSV renders the report in the sectioned CSV layout: Class
// Comparison, Relationship Comparison, Model Metrics (all floats to
// 3 decimal places), and a final Best Model row.
func MarshalCSV(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	write := func(record ...string) {
		w.Write(record) //nolint:errcheck
	}

	write("Class Comparison")
	write(classHeader...)
	for _, row := range report.Classes {
		write(row.Class, strings.Join(row.Models, ", "))
	}
	write()

	write("Relationship Comparison")
	write(relationshipHeader...)
	for _, row := range report.Relationships {
		write(row.From, row.To, row.Label, strings.Join(row.Models, ", "))
	}
	write()

	write("Model Metrics")
	write(metricsHeader...)
	for _, row := range report.Metrics {
		write(
			row.Model,
			formatMetric(row.RecallClasses),
			formatMetric(row.PrecisionClasses),
			formatMetric(row.RecallRelationships),
			formatMetric(row.PrecisionRelationships),
			formatMetric(row.OverlapScore),
			formatMetric(row.TotalScore),
		)
	}
	write()

	write("Best Model", report.BestModel)

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("rendering CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteCSV writes the report to the specified file path.
func WriteCSV(report *Report, path string) error {
	data, err := MarshalCSV(report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func formatMetric(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

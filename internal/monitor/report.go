package monitor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ReportFormat represents the output format for metric reports
type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
)

// FormatReport renders a snapshot for the terminal
func FormatReport(snapshot MetricsSnapshot, format ReportFormat) (string, error) {
	switch format {
	case ReportFormatJSON:
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal metrics report: %w", err)
		}
		return string(data), nil
	case ReportFormatText, "":
		return formatText(snapshot), nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", format)
	}
}

func formatText(snapshot MetricsSnapshot) string {
	var b strings.Builder
	b.WriteString("Operations\n")
	for _, op := range snapshot.Operations {
		if op.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-8s count=%d errors=%d avg=%s\n", op.Operation, op.Count, op.ErrorCount, op.AvgTime())
	}
	if snapshot.Requests > 0 {
		fmt.Fprintf(&b, "HTTP requests: %d\n", snapshot.Requests)
	}
	return b.String()
}

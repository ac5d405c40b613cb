package formatter

import (
	"fmt"

	"github.com/yildizm/LaunchDash/internal/chart"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(snapshot *chart.Snapshot) ([]byte, error)
}

// Formats lists the supported output format names
var Formats = []string{"text", "json", "markdown", "csv", "yaml"}

// New returns the formatter for format. color only affects text output.
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "text", "":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	case "yaml":
		return NewYAML(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: text, json, markdown, csv, yaml)", format)
	}
}

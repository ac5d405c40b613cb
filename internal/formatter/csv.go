package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yildizm/LaunchDash/internal/chart"
)

// csvFormatter flattens both charts into one row per slice or point
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(snapshot *chart.Snapshot) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{"Chart", "Group", "Label", "Payload Mass (kg)", "Value"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, slice := range snapshot.Pie.Slices {
		record := []string{"pie", snapshot.Pie.NamesLabel, slice.Label, "", strconv.Itoa(slice.Value)}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	for _, series := range snapshot.Scatter.Series {
		for _, p := range series.Points {
			record := []string{
				"scatter",
				snapshot.Scatter.ColorLabel,
				series.Name,
				strconv.FormatFloat(p.X, 'f', -1, 64),
				strconv.Itoa(p.Y),
			}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

package formatter

import (
	"encoding/json"

	"github.com/yildizm/LaunchDash/internal/chart"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(snapshot *chart.Snapshot) ([]byte, error) {
	return json.MarshalIndent(newSnapshotOutput(snapshot), "", "  ")
}

// SnapshotOutput is the structured summary shared by the JSON and YAML formatters
type SnapshotOutput struct {
	Selection chart.Selection   `json:"selection" yaml:"selection"`
	Launches  int               `json:"launches" yaml:"launches"`
	Pie       chart.PieSpec     `json:"pie" yaml:"pie"`
	Scatter   chart.ScatterSpec `json:"scatter" yaml:"scatter"`
	Boosters  []SeriesStats     `json:"boosters" yaml:"boosters"`
}

func newSnapshotOutput(snapshot *chart.Snapshot) *SnapshotOutput {
	return &SnapshotOutput{
		Selection: snapshot.Selection,
		Launches:  snapshot.Launches,
		Pie:       snapshot.Pie,
		Scatter:   snapshot.Scatter,
		Boosters:  SummarizeSeries(snapshot.Scatter.Series),
	}
}

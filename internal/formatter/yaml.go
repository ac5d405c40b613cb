package formatter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yildizm/LaunchDash/internal/chart"
)

// yamlFormatter formats output as YAML
type yamlFormatter struct{}

// NewYAML creates a new YAML formatter
func NewYAML() Formatter {
	return &yamlFormatter{}
}

func (f *yamlFormatter) Format(snapshot *chart.Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(newSnapshotOutput(snapshot))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return data, nil
}

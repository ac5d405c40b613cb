package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/LaunchDash/internal/dataset"
)

// DatasetMsg installs a freshly loaded dataset in the dashboard. File
// watchers send it through tea.Program.Send when the CSV changes.
type DatasetMsg struct {
	Dataset *dataset.Dataset
}

type datasetErrorMsg struct {
	err error
}

// LoadDatasetCommand creates a tea command that loads the CSV at path
func LoadDatasetCommand(path string) tea.Cmd {
	return func() tea.Msg {
		ds, err := dataset.Load(path)
		if err != nil {
			return datasetErrorMsg{err: err}
		}
		return DatasetMsg{Dataset: ds}
	}
}

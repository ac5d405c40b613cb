// Package layout assembles the static dashboard widget tree from the
// dataset's derived scalars. The tree is declarative: the runtime renders
// it and wires the graph slots to the resolvers by id.
package layout

import (
	"strconv"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/dataset"
)

// Widget ids shared with the reactive runtime
const (
	SiteDropdownID  = "site-dropdown"
	PieGraphID      = "success-pie-chart"
	PayloadSliderID = "payload-slider"
	ScatterGraphID  = "success-payload-scatter-chart"
)

// Slider domain. It stays fixed whatever payloads the dataset holds.
const (
	SliderMin  = 0
	SliderMax  = 10000
	SliderStep = 1000
)

// Title text and style
const (
	TitleText     = "SpaceX Launch Records Dashboard"
	TitleColor    = "#503D36"
	TitleFontSize = 40
)

// Option is one dropdown entry
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Style carries the presentational attributes of a heading
type Style struct {
	TextAlign string `json:"textAlign"`
	Color     string `json:"color"`
	FontSize  int    `json:"fontSize"`
}

// Heading is the dashboard title
type Heading struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// Dropdown is a single-select input
type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

// Mark is a labelled slider tick
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSlider is a dual-handle range input
type RangeSlider struct {
	ID    string             `json:"id"`
	Min   float64            `json:"min"`
	Max   float64            `json:"max"`
	Step  float64            `json:"step"`
	Marks []Mark             `json:"marks"`
	Value chart.PayloadRange `json:"value"`
}

// Graph is an empty figure slot filled by a resolver
type Graph struct {
	ID string `json:"id"`
}

// Layout is the full widget tree in display order
type Layout struct {
	Title         Heading     `json:"title"`
	SiteDropdown  Dropdown    `json:"site_dropdown"`
	PieGraph      Graph       `json:"pie_graph"`
	PayloadLabel  string      `json:"payload_label"`
	PayloadSlider RangeSlider `json:"payload_slider"`
	ScatterGraph  Graph       `json:"scatter_graph"`
}

// Build assembles the layout for ds. The slider value is the observed
// payload bounds and is not clamped to the slider domain.
func Build(ds *dataset.Dataset) Layout {
	bounds := ds.Bounds()

	return Layout{
		Title: Heading{
			Text:  TitleText,
			Style: Style{TextAlign: "center", Color: TitleColor, FontSize: TitleFontSize},
		},
		SiteDropdown: Dropdown{
			ID:          SiteDropdownID,
			Options:     siteOptions(ds.Sites()),
			Value:       chart.AllSites,
			Placeholder: "Select a Launch Site here",
			Searchable:  true,
		},
		PieGraph:     Graph{ID: PieGraphID},
		PayloadLabel: "Payload range (Kg):",
		PayloadSlider: RangeSlider{
			ID:    PayloadSliderID,
			Min:   SliderMin,
			Max:   SliderMax,
			Step:  SliderStep,
			Marks: sliderMarks(),
			Value: chart.PayloadRange{Low: bounds.Min, High: bounds.Max},
		},
		ScatterGraph: Graph{ID: ScatterGraphID},
	}
}

func siteOptions(sites []string) []Option {
	options := make([]Option, 0, len(sites)+1)
	options = append(options, Option{Label: "All Sites", Value: chart.AllSites})
	for _, site := range sites {
		options = append(options, Option{Label: site, Value: site})
	}
	return options
}

func sliderMarks() []Mark {
	marks := make([]Mark, 0, (SliderMax-SliderMin)/SliderStep+1)
	for v := SliderMin; v <= SliderMax; v += SliderStep {
		marks = append(marks, Mark{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return marks
}

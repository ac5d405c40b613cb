// Package chart holds the two dashboard resolvers. Both are pure functions of
// the immutable launch dataset and the current selection.
package chart

// AllSites is the site selection meaning "every launch site"
const AllSites = "ALL"

// Axis and legend labels shared by the chart specifications
const (
	LabelSite    = "Launch Site"
	LabelPayload = "Payload Mass (kg)"
	LabelBooster = "Booster Version Category"
	LabelClass   = "Success (1) / Failure (0)"
	LabelCount   = "counts"
)

// PayloadRange is an inclusive payload mass interval in kilograms
type PayloadRange struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Contains reports whether mass lies within the range, bounds included
func (r PayloadRange) Contains(mass float64) bool {
	return mass >= r.Low && mass <= r.High
}

// Selection is the dashboard input state driving both resolvers
type Selection struct {
	Site    string       `json:"site" yaml:"site"`
	Payload PayloadRange `json:"payload" yaml:"payload"`
}

// IsAll reports whether the selection spans every site
func (s Selection) IsAll() bool {
	return s.Site == AllSites
}

// Slice is one pie slice
type Slice struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// PieSpec describes a pie chart
type PieSpec struct {
	Title       string  `json:"title" yaml:"title"`
	NamesLabel  string  `json:"names_label" yaml:"names_label"`
	ValuesLabel string  `json:"values_label" yaml:"values_label"`
	Slices      []Slice `json:"slices" yaml:"slices"`
}

// Total sums the slice values
func (p PieSpec) Total() int {
	total := 0
	for _, s := range p.Slices {
		total += s.Value
	}
	return total
}

// Point is one scatter point: payload mass against outcome class
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y int     `json:"y" yaml:"y"`
}

// Series groups the points of one booster version category
type Series struct {
	Name   string  `json:"name" yaml:"name"`
	Points []Point `json:"points" yaml:"points"`
}

// ScatterSpec describes a scatter chart colored by booster version category
type ScatterSpec struct {
	Title      string       `json:"title" yaml:"title"`
	XLabel     string       `json:"x_label" yaml:"x_label"`
	YLabel     string       `json:"y_label" yaml:"y_label"`
	ColorLabel string       `json:"color_label" yaml:"color_label"`
	Payload    PayloadRange `json:"payload" yaml:"payload"`
	Series     []Series     `json:"series" yaml:"series"`
}

// PointCount returns the number of points across all series
func (s ScatterSpec) PointCount() int {
	count := 0
	for _, series := range s.Series {
		count += len(series.Points)
	}
	return count
}

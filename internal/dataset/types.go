package dataset

import (
	"iter"
	"math"
)

// Column names required in the launch file header
const (
	ColumnSite    = "Launch Site"
	ColumnPayload = "Payload Mass (kg)"
	ColumnBooster = "Booster Version Category"
	ColumnClass   = "class"
)

// RequiredColumns lists the header columns every launch file must carry
var RequiredColumns = []string{ColumnSite, ColumnPayload, ColumnBooster, ColumnClass}

// Outcome classes
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// Launch is one launch attempt
type Launch struct {
	Site            string  `json:"site" yaml:"site"`
	PayloadMassKg   float64 `json:"payload_mass_kg" yaml:"payload_mass_kg"`
	BoosterCategory string  `json:"booster_category" yaml:"booster_category"`
	Class           int     `json:"class" yaml:"class"`
}

// Succeeded reports whether the launch outcome class is a success
func (l Launch) Succeeded() bool {
	return l.Class == ClassSuccess
}

// PayloadBounds holds the observed payload mass extremes
type PayloadBounds struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Dataset is the read-only launch collection plus the scalars derived from it.
// It is built once and never mutated, so it is safe to share between goroutines.
type Dataset struct {
	source   string
	launches []Launch
	sites    []string
	bounds   PayloadBounds
}

// New builds a dataset from in-memory records. The slice is copied.
func New(launches []Launch) *Dataset {
	return newDataset("memory", launches)
}

func newDataset(source string, launches []Launch) *Dataset {
	owned := make([]Launch, len(launches))
	copy(owned, launches)

	return &Dataset{
		source:   source,
		launches: owned,
		sites:    siteCatalog(owned),
		bounds:   payloadBounds(owned),
	}
}

// Source returns where the dataset was loaded from
func (d *Dataset) Source() string {
	return d.source
}

// Len returns the number of launch records
func (d *Dataset) Len() int {
	return len(d.launches)
}

// All iterates over every launch record in source order
func (d *Dataset) All() iter.Seq[Launch] {
	return func(yield func(Launch) bool) {
		for _, l := range d.launches {
			if !yield(l) {
				return
			}
		}
	}
}

// Launches returns a copy of all launch records
func (d *Dataset) Launches() []Launch {
	out := make([]Launch, len(d.launches))
	copy(out, d.launches)
	return out
}

// Sites returns the distinct launch sites in first-seen order
func (d *Dataset) Sites() []string {
	out := make([]string, len(d.sites))
	copy(out, d.sites)
	return out
}

// HasSite reports whether site appears in the catalog
func (d *Dataset) HasSite(site string) bool {
	for _, s := range d.sites {
		if s == site {
			return true
		}
	}
	return false
}

// Bounds returns the observed payload mass bounds
func (d *Dataset) Bounds() PayloadBounds {
	return d.bounds
}

// siteCatalog collects distinct sites in first-seen order
func siteCatalog(launches []Launch) []string {
	seen := make(map[string]bool)
	sites := make([]string, 0)
	for _, l := range launches {
		if seen[l.Site] {
			continue
		}
		seen[l.Site] = true
		sites = append(sites, l.Site)
	}
	return sites
}

// payloadBounds skips NaN masses; an empty dataset yields {0, 0}
func payloadBounds(launches []Launch) PayloadBounds {
	bounds := PayloadBounds{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, l := range launches {
		if math.IsNaN(l.PayloadMassKg) {
			continue
		}
		bounds.Min = math.Min(bounds.Min, l.PayloadMassKg)
		bounds.Max = math.Max(bounds.Max, l.PayloadMassKg)
	}
	if math.IsInf(bounds.Min, 1) {
		return PayloadBounds{}
	}
	return bounds
}

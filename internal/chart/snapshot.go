package chart

import "github.com/yildizm/LaunchDash/internal/dataset"

// Snapshot bundles both chart specifications for one selection
type Snapshot struct {
	Selection Selection   `json:"selection" yaml:"selection"`
	Launches  int         `json:"launches" yaml:"launches"`
	Pie       PieSpec     `json:"pie" yaml:"pie"`
	Scatter   ScatterSpec `json:"scatter" yaml:"scatter"`
}

// DefaultSelection is the initial dashboard state: every site and the
// observed payload bounds
func DefaultSelection(ds *dataset.Dataset) Selection {
	bounds := ds.Bounds()
	return Selection{
		Site:    AllSites,
		Payload: PayloadRange{Low: bounds.Min, High: bounds.Max},
	}
}

// Resolve runs both resolvers for sel
func Resolve(ds *dataset.Dataset, sel Selection) *Snapshot {
	return &Snapshot{
		Selection: sel,
		Launches:  ds.Len(),
		Pie:       Pie(ds, sel.Site),
		Scatter:   Scatter(ds, sel.Site, sel.Payload),
	}
}

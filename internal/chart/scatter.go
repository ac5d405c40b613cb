package chart

import (
	"fmt"

	"github.com/yildizm/LaunchDash/internal/dataset"
)

// Scatter resolves the payload vs. outcome scatter chart. Launches are kept
// when their payload mass lies in the inclusive range and, unless site is
// AllSites, when they were launched from site. Points are grouped by booster
// version category in first-seen order. An inverted range matches nothing.
func Scatter(ds *dataset.Dataset, site string, payload PayloadRange) ScatterSpec {
	series := make([]Series, 0)
	index := make(map[string]int)

	for l := range ds.All() {
		if !payload.Contains(l.PayloadMassKg) {
			continue
		}
		if site != AllSites && l.Site != site {
			continue
		}

		i, ok := index[l.BoosterCategory]
		if !ok {
			i = len(series)
			index[l.BoosterCategory] = i
			series = append(series, Series{Name: l.BoosterCategory})
		}
		series[i].Points = append(series[i].Points, Point{X: l.PayloadMassKg, Y: l.Class})
	}

	title := "Payload vs. Outcome for All Sites"
	if site != AllSites {
		title = fmt.Sprintf("Payload vs. Outcome for %s", site)
	}

	return ScatterSpec{
		Title:      title,
		XLabel:     LabelPayload,
		YLabel:     LabelClass,
		ColorLabel: LabelBooster,
		Payload:    payload,
		Series:     series,
	}
}

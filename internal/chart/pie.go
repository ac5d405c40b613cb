package chart

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/yildizm/LaunchDash/internal/dataset"
)

// Pie resolves the pie chart for the selected site.
//
// For AllSites it sums the outcome class per site, so each slice is that
// site's success count and failures are not represented. For a single site it
// counts each outcome class present at that site. A site that matches no
// launch yields a chart with no slices.
func Pie(ds *dataset.Dataset, site string) PieSpec {
	if site == AllSites {
		return successesBySite(ds)
	}
	return outcomesForSite(ds, site)
}

func successesBySite(ds *dataset.Dataset) PieSpec {
	successes := make(map[string]int)
	for l := range ds.All() {
		successes[l.Site] += l.Class
	}

	sites := ds.Sites()
	slices := make([]Slice, 0, len(sites))
	for _, site := range sites {
		slices = append(slices, Slice{Label: site, Value: successes[site]})
	}

	return PieSpec{
		Title:       "Total Successful Launches by Site",
		NamesLabel:  LabelSite,
		ValuesLabel: dataset.ColumnClass,
		Slices:      slices,
	}
}

func outcomesForSite(ds *dataset.Dataset, site string) PieSpec {
	counts := make(map[int]int)
	for l := range ds.All() {
		if l.Site == site {
			counts[l.Class]++
		}
	}

	classes := make([]int, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	// most frequent class first, ties by class value
	sort.Slice(classes, func(i, j int) bool {
		ci, cj := counts[classes[i]], counts[classes[j]]
		if ci != cj {
			return ci > cj
		}
		return classes[i] < classes[j]
	})

	slices := make([]Slice, 0, len(classes))
	for _, class := range classes {
		slices = append(slices, Slice{Label: strconv.Itoa(class), Value: counts[class]})
	}

	return PieSpec{
		Title:       fmt.Sprintf("Success vs. Failure for %s", site),
		NamesLabel:  LabelClass,
		ValuesLabel: LabelCount,
		Slices:      slices,
	}
}

package formatter

import (
	"fmt"
	"math"

	"github.com/yildizm/LaunchDash/internal/chart"
)

// formatNumber formats numbers with commas for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return addCommas(fmt.Sprintf("%d", n))
}

// addCommas adds commas to number strings
func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}

// FormatMass renders a payload mass in kilograms
func FormatMass(kg float64) string {
	switch {
	case math.IsInf(kg, 1):
		return "+inf"
	case math.IsInf(kg, -1):
		return "-inf"
	case kg == math.Trunc(kg) && math.Abs(kg) < 1e15:
		return formatNumber(int(kg)) + " kg"
	default:
		return fmt.Sprintf("%.1f kg", kg)
	}
}

// share returns value as a fraction of total, 0 for an empty total
func share(value, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(value) / float64(total)
}

// SeriesStats summarizes one scatter series
type SeriesStats struct {
	Name      string  `json:"name" yaml:"name"`
	Launches  int     `json:"launches" yaml:"launches"`
	Successes int     `json:"successes" yaml:"successes"`
	MinMass   float64 `json:"min_payload_kg" yaml:"min_payload_kg"`
	MaxMass   float64 `json:"max_payload_kg" yaml:"max_payload_kg"`
}

// SuccessRate returns the share of successful launches
func (s SeriesStats) SuccessRate() float64 {
	return share(s.Successes, s.Launches)
}

// SummarizeSeries aggregates each series into per-booster statistics
func SummarizeSeries(series []chart.Series) []SeriesStats {
	stats := make([]SeriesStats, 0, len(series))
	for _, s := range series {
		st := SeriesStats{Name: s.Name, Launches: len(s.Points)}
		for i, p := range s.Points {
			if p.Y == 1 {
				st.Successes++
			}
			if i == 0 || p.X < st.MinMass {
				st.MinMass = p.X
			}
			if i == 0 || p.X > st.MaxMass {
				st.MaxMass = p.X
			}
		}
		stats = append(stats, st)
	}
	return stats
}

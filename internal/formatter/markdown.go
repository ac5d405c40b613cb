package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/LaunchDash/internal/chart"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(snapshot *chart.Snapshot) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# SpaceX Launch Records Dashboard\n\n")

	f.writeSelection(&b, snapshot)
	f.writePie(&b, snapshot.Pie)
	f.writeScatter(&b, snapshot.Scatter)

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeSelection(b *strings.Builder, snapshot *chart.Snapshot) {
	b.WriteString("## Selection\n\n")
	b.WriteString("| Setting | Value |\n")
	b.WriteString("|---------|-------|\n")
	fmt.Fprintf(b, "| Launch Site | %s |\n", escapeCell(snapshot.Selection.Site))
	fmt.Fprintf(b, "| Payload Range | %s - %s |\n", FormatMass(snapshot.Selection.Payload.Low), FormatMass(snapshot.Selection.Payload.High))
	fmt.Fprintf(b, "| Launches Loaded | %s |\n\n", formatNumber(snapshot.Launches))
}

func (f *markdownFormatter) writePie(b *strings.Builder, pie chart.PieSpec) {
	fmt.Fprintf(b, "## %s\n\n", pie.Title)

	if len(pie.Slices) == 0 {
		b.WriteString("_No launches match this site._\n\n")
		return
	}

	total := pie.Total()
	fmt.Fprintf(b, "| %s | %s | Share |\n", pie.NamesLabel, pie.ValuesLabel)
	b.WriteString("|---|---:|---:|\n")
	for _, slice := range pie.Slices {
		fmt.Fprintf(b, "| %s | %d | %.1f%% |\n", escapeCell(slice.Label), slice.Value, share(slice.Value, total)*100)
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeScatter(b *strings.Builder, scatter chart.ScatterSpec) {
	fmt.Fprintf(b, "## %s\n\n", scatter.Title)

	stats := SummarizeSeries(scatter.Series)
	if len(stats) == 0 {
		b.WriteString("_No launches in the selected payload range._\n")
		return
	}

	fmt.Fprintf(b, "| %s | Launches | Successes | Success Rate | Payload |\n", scatter.ColorLabel)
	b.WriteString("|---|---:|---:|---:|---|\n")
	for _, st := range stats {
		fmt.Fprintf(b, "| %s | %d | %d | %.0f%% | %s - %s |\n",
			escapeCell(st.Name), st.Launches, st.Successes, st.SuccessRate()*100,
			FormatMass(st.MinMass), FormatMass(st.MaxMass))
	}
	fmt.Fprintf(b, "\n**Total points:** %d\n", scatter.PointCount())
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

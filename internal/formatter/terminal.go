package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/emoji"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(snapshot *chart.Snapshot) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeSelection(&b, snapshot)
	f.writePie(&b, snapshot.Pie)
	f.writeScatter(&b, snapshot.Scatter)

	return []byte(b.String()), nil
}

// writeHeader writes a header with box drawing
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "SpaceX Launch Records Dashboard"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeSelection writes the active selection as a tree
func (f *terminalFormatter) writeSelection(b *strings.Builder, snapshot *chart.Snapshot) {
	b.WriteString(emoji.GetEmoji("target") + " Selection\n")

	site := snapshot.Selection.Site
	if snapshot.Selection.IsAll() {
		site = "All Sites"
	}
	payload := snapshot.Selection.Payload

	items := []termfmt.TreeItem{
		{Label: "Launch Site", Value: site},
		{Label: "Payload Range", Value: FormatMass(payload.Low) + " - " + FormatMass(payload.High)},
		{Label: "Launches Loaded", Value: formatNumber(snapshot.Launches), Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writePie writes one bar per slice, scaled to the slice share of the total
func (f *terminalFormatter) writePie(b *strings.Builder, pie chart.PieSpec) {
	b.WriteString(emoji.GetEmoji("statistics") + " " + pie.Title + "\n")

	if len(pie.Slices) == 0 {
		b.WriteString("└─ no launches\n\n")
		return
	}

	total := pie.Total()
	items := make([]termfmt.TreeItem, 0, len(pie.Slices))
	for i, slice := range pie.Slices {
		bar := termfmt.CreateConfidenceBar(share(slice.Value, total), f.opts)
		items = append(items, termfmt.TreeItem{
			Label: f.sliceLabel(pie, slice),
			Value: fmt.Sprintf("%s %d (%.1f%%)", bar, slice.Value, share(slice.Value, total)*100),
			Last:  i == len(pie.Slices)-1,
		})
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// sliceLabel names outcome classes when the pie splits a single site
func (f *terminalFormatter) sliceLabel(pie chart.PieSpec, slice chart.Slice) string {
	if pie.NamesLabel != chart.LabelClass {
		return slice.Label
	}
	switch slice.Label {
	case "1":
		return emoji.GetEmoji("success") + " Success (1)"
	case "0":
		return emoji.GetEmoji("failure") + " Failure (0)"
	default:
		return "Class " + slice.Label
	}
}

// writeScatter writes per booster category counts for the scatter selection
func (f *terminalFormatter) writeScatter(b *strings.Builder, scatter chart.ScatterSpec) {
	b.WriteString(emoji.GetEmoji("chart") + " " + scatter.Title + "\n")

	stats := SummarizeSeries(scatter.Series)
	if len(stats) == 0 {
		b.WriteString("└─ no launches in payload range\n")
		return
	}

	items := make([]termfmt.TreeItem, 0, len(stats))
	for i, st := range stats {
		bar := termfmt.CreateConfidenceBar(st.SuccessRate(), f.opts)
		items = append(items, termfmt.TreeItem{
			Label: emoji.GetEmoji("booster") + " " + st.Name,
			Value: fmt.Sprintf("%d launches", st.Launches),
			Children: []termfmt.TreeItem{
				{Label: "Success Rate", Value: fmt.Sprintf("%s %.0f%% (%d/%d)", bar, st.SuccessRate()*100, st.Successes, st.Launches)},
				{Label: "Payload", Value: FormatMass(st.MinMass) + " - " + FormatMass(st.MaxMass), Last: true},
			},
			Last: i == len(stats)-1,
		})
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n")
	fmt.Fprintf(b, "\nTotal points: %s\n", formatNumber(scatter.PointCount()))
}

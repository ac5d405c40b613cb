package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/formatter"
)

// StatsCard represents a statistics card component
type StatsCard struct {
	Title       string
	Value       string
	Description string
	Status      string // "success", "warning", "error", "info"
	Icon        string
	Width       int
	Height      int
	Palette     Palette
}

// NewStatsCard creates a new stats card
func NewStatsCard(title, value, description string) *StatsCard {
	return &StatsCard{
		Title:       title,
		Value:       value,
		Description: description,
		Status:      "info",
		Width:       20,
		Height:      4,
		Palette:     DefaultPalette,
	}
}

// SetStatus sets the status color of the card
func (s *StatsCard) SetStatus(status string) *StatsCard {
	s.Status = status
	return s
}

// SetIcon sets the icon for the card
func (s *StatsCard) SetIcon(icon string) *StatsCard {
	s.Icon = icon
	return s
}

// SetSize sets the size of the card
func (s *StatsCard) SetSize(width, height int) *StatsCard {
	s.Width = width
	s.Height = height
	return s
}

// Render renders the stats card
func (s *StatsCard) Render() string {
	palette := s.Palette.orDefault()

	valueStyle := lipgloss.NewStyle().Foreground(palette.statusColor(s.Status))
	titleStyle := lipgloss.NewStyle().Foreground(palette.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(palette.Muted)
	boxStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(palette.Border).Padding(0, 1)

	title := titleStyle.Render(s.Title)
	if s.Icon != "" {
		title = s.Icon + " " + title
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		valueStyle.Bold(true).Render(s.Value),
		mutedStyle.Render(s.Description),
	)

	return boxStyle.
		Width(s.Width).
		Height(s.Height).
		Render(content)
}

// StatsDashboard represents a collection of stats cards
type StatsDashboard struct {
	cards      []*StatsCard
	columns    int
	cardWidth  int
	cardHeight int
	palette    Palette
}

// NewStatsDashboard creates a new stats dashboard
func NewStatsDashboard(columns int, palette Palette) *StatsDashboard {
	return &StatsDashboard{
		columns:    columns,
		cardWidth:  20,
		cardHeight: 3,
		palette:    palette.orDefault(),
	}
}

// AddCard adds a stats card to the dashboard
func (d *StatsDashboard) AddCard(card *StatsCard) {
	card.SetSize(d.cardWidth, d.cardHeight)
	card.Palette = d.palette
	d.cards = append(d.cards, card)
}

// Cards returns the cards in insertion order
func (d *StatsDashboard) Cards() []*StatsCard {
	return d.cards
}

// Render renders the stats dashboard
func (d *StatsDashboard) Render() string {
	if len(d.cards) == 0 {
		return ""
	}

	var rows []string
	for i := 0; i < len(d.cards); i += d.columns {
		end := min(i+d.columns, len(d.cards))

		var rowCards []string
		for j := i; j < end; j++ {
			rowCards = append(rowCards, d.cards[j].Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rowCards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// CreateLaunchStats creates stats cards describing the current selection
func CreateLaunchStats(snapshot *chart.Snapshot, palette Palette) *StatsDashboard {
	dashboard := NewStatsDashboard(4, palette)

	dashboard.AddCard(NewStatsCard(
		"Launches",
		formatNumber(snapshot.Launches),
		"Records loaded",
	).SetStatus("info"))

	plotted, successes := 0, 0
	for _, st := range formatter.SummarizeSeries(snapshot.Scatter.Series) {
		plotted += st.Launches
		successes += st.Successes
	}

	dashboard.AddCard(NewStatsCard(
		"In Range",
		formatNumber(plotted),
		"Launches plotted",
	).SetStatus("info"))

	rateStatus := "success"
	rate := 0.0
	if plotted > 0 {
		rate = float64(successes) / float64(plotted) * 100
	}
	switch {
	case plotted == 0:
		rateStatus = "info"
	case rate < 50:
		rateStatus = "error"
	case rate < 75:
		rateStatus = "warning"
	}

	dashboard.AddCard(NewStatsCard(
		"Success Rate",
		fmt.Sprintf("%.1f%%", rate),
		fmt.Sprintf("%d of %d in range", successes, plotted),
	).SetStatus(rateStatus))

	dashboard.AddCard(NewStatsCard(
		"Boosters",
		formatNumber(len(snapshot.Scatter.Series)),
		"Categories in range",
	).SetStatus("info"))

	return dashboard
}

// formatNumber formats large numbers with commas
func formatNumber(n int) string {
	str := strconv.Itoa(n)
	if len(str) <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// SummaryLine is one row of a summary box. Rows without a key are plain text.
type SummaryLine struct {
	Key   string
	Value string
}

// SummaryBox creates a summary information box
type SummaryBox struct {
	Title    string
	Content  []SummaryLine
	Width    int
	KeyColor lipgloss.TerminalColor
	Palette  Palette
}

// NewSummaryBox creates a new summary box
func NewSummaryBox(title string, width int) *SummaryBox {
	return &SummaryBox{
		Title:    title,
		Width:    width,
		KeyColor: DefaultPalette.Accent,
		Palette:  DefaultPalette,
	}
}

// AddLine adds a line to the summary
func (s *SummaryBox) AddLine(line string) {
	s.Content = append(s.Content, SummaryLine{Value: line})
}

// AddKeyValue adds a key-value pair to the summary
func (s *SummaryBox) AddKeyValue(key, value string) {
	s.Content = append(s.Content, SummaryLine{Key: key, Value: value})
}

// Render renders the summary box
func (s *SummaryBox) Render() string {
	palette := s.Palette.orDefault()

	headerStyle := lipgloss.NewStyle().Foreground(palette.Accent).Bold(true)
	boxStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(palette.Border).Padding(0, 1)
	bodyStyle := lipgloss.NewStyle().Foreground(palette.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(s.KeyColor).Bold(true)

	content := make([]string, 0, len(s.Content)+2)
	content = append(content, headerStyle.Render(s.Title), "")
	for _, line := range s.Content {
		if line.Key == "" {
			content = append(content, bodyStyle.Render(line.Value))
			continue
		}
		content = append(content, keyStyle.Render(fmt.Sprintf("%-15s", line.Key))+bodyStyle.Render(": "+line.Value))
	}

	return boxStyle.Width(s.Width).Render(lipgloss.JoinVertical(lipgloss.Left, content...))
}

// BoosterSummary lists per-booster statistics for the scatter chart, keyed
// by booster category in the booster color
func BoosterSummary(spec *chart.ScatterSpec, width int, palette Palette) *SummaryBox {
	palette = palette.orDefault()
	box := NewSummaryBox(spec.Title, width)
	box.Palette = palette
	box.KeyColor = palette.Booster

	stats := formatter.SummarizeSeries(spec.Series)
	if len(stats) == 0 {
		box.AddLine("No launches match the current selection")
		return box
	}

	for _, st := range stats {
		box.AddKeyValue(st.Name, fmt.Sprintf("%d launches, %d successes, %s - %s",
			st.Launches, st.Successes, formatter.FormatMass(st.MinMass), formatter.FormatMass(st.MaxMass)))
	}

	return box
}

package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/LaunchDash/internal/chart"
)

// ProgressBar renders a share of a total as a horizontal bar
type ProgressBar struct {
	Width   int
	Current int
	Total   int
	Label   string
	Color   lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor
}

// NewProgressBar creates a new progress bar
func NewProgressBar(width int) *ProgressBar {
	return &ProgressBar{
		Width: width,
		Color: DefaultPalette.Success,
		Muted: DefaultPalette.Muted,
	}
}

// SetProgress updates the progress
func (p *ProgressBar) SetProgress(current, total int) {
	p.Current = current
	p.Total = total
}

// SetLabel sets the progress label
func (p *ProgressBar) SetLabel(label string) {
	p.Label = label
}

// Render renders the progress bar
func (p *ProgressBar) Render() string {
	progressStyle := lipgloss.NewStyle().Foreground(p.Color).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(p.Muted)

	percentage := 0.0
	if p.Total > 0 {
		percentage = math.Min(float64(p.Current)/float64(p.Total), 1.0)
	}

	filledWidth := int(float64(p.Width) * percentage)
	emptyWidth := p.Width - filledWidth

	bar := progressStyle.Render(strings.Repeat("█", filledWidth)) +
		mutedStyle.Render(strings.Repeat("░", emptyWidth))

	result := fmt.Sprintf("[%s] %d/%d %.1f%%", bar, p.Current, p.Total, percentage*100)
	if p.Label != "" {
		result = p.Label + " " + result
	}

	return result
}

// PieBars renders every pie slice as a bar of its share of the total.
// outcomes marks a single-site pie whose slices are outcome classes.
func PieBars(spec *chart.PieSpec, width int, outcomes bool, palette Palette) string {
	palette = palette.orDefault()
	if len(spec.Slices) == 0 {
		mutedStyle := lipgloss.NewStyle().Foreground(palette.Muted)
		return mutedStyle.Render("No launches match the current selection")
	}

	labels := make([]string, len(spec.Slices))
	labelWidth := 0
	for i, s := range spec.Slices {
		labels[i] = s.Label
		if outcomes {
			labels[i] = outcomeLabel(s.Label)
		}
		labelWidth = max(labelWidth, lipgloss.Width(labels[i]))
	}

	total := spec.Total()

	lines := make([]string, 0, len(spec.Slices))
	for i, s := range spec.Slices {
		bar := NewProgressBar(width)
		bar.Color = palette.sliceColor(i, s.Label, outcomes)
		bar.Muted = palette.Muted
		bar.SetLabel(fmt.Sprintf("%-*s", labelWidth, labels[i]))
		bar.SetProgress(s.Value, total)
		lines = append(lines, bar.Render())
	}

	return strings.Join(lines, "\n")
}

// outcomeLabel names an outcome class slice
func outcomeLabel(class string) string {
	switch class {
	case "1":
		return "Success"
	case "0":
		return "Failure"
	default:
		return "Class " + class
	}
}

// RangeTrack draws a two-handle range slider over a fixed domain
type RangeTrack struct {
	Min   float64
	Max   float64
	Value   chart.PayloadRange
	Width   int
	Palette Palette
}

// position maps v onto a track cell, clamping values outside the domain
func (r *RangeTrack) position(v float64) int {
	if r.Max <= r.Min || r.Width < 2 {
		return 0
	}
	frac := (v - r.Min) / (r.Max - r.Min)
	frac = math.Max(0, math.Min(1, frac))
	return int(math.Round(frac * float64(r.Width-1)))
}

// Render renders the track with its domain bounds on either side
func (r *RangeTrack) Render() string {
	palette := r.Palette.orDefault()
	handleStyle := lipgloss.NewStyle().Foreground(palette.Accent).Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(palette.Track)
	mutedStyle := lipgloss.NewStyle().Foreground(palette.Muted)

	width := max(r.Width, 2)
	low, high := r.position(r.Value.Low), r.position(r.Value.High)

	var track strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == low || i == high:
			track.WriteString(handleStyle.Render("●"))
		case i > low && i < high:
			track.WriteString(activeStyle.Render("━"))
		default:
			track.WriteString(mutedStyle.Render("─"))
		}
	}

	return fmt.Sprintf("%g %s %g", r.Min, track.String(), r.Max)
}

// Spinner represents a spinning progress indicator
type Spinner struct {
	Frame int
	Label string
	Color lipgloss.TerminalColor
}

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// NewSpinner creates a new spinner
func NewSpinner() *Spinner {
	return &Spinner{Color: DefaultPalette.Track}
}

// SetLabel sets the spinner label
func (s *Spinner) SetLabel(label string) {
	s.Label = label
}

// Tick advances the spinner animation
func (s *Spinner) Tick() {
	s.Frame = (s.Frame + 1) % len(spinnerFrames)
}

// Render renders the spinner
func (s *Spinner) Render() string {
	progressStyle := lipgloss.NewStyle().Foreground(s.Color).Bold(true)
	spinner := progressStyle.Render(string(spinnerFrames[s.Frame]))

	if s.Label != "" {
		return fmt.Sprintf("%s %s", spinner, s.Label)
	}
	return spinner
}

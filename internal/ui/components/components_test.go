package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/dataset"
)

func TestSiteList(t *testing.T) {
	ds := dataset.New([]dataset.Launch{
		{Site: "VAFB", PayloadMassKg: 500, BoosterCategory: "v1.1", Class: 0},
		{Site: "CCAFS", PayloadMassKg: 2500, BoosterCategory: "FT", Class: 1},
		{Site: "VAFB", PayloadMassKg: 9600, BoosterCategory: "B4", Class: 1},
	})

	list := NewSiteList(ds, 30, 10, Palette{})
	if len(list.Items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(list.Items))
	}
	if list.Items[0].ID != chart.AllSites || list.Items[0].Description != "3 launches" {
		t.Errorf("Unexpected first item %+v", list.Items[0])
	}
	if list.Items[1].ID != "VAFB" || list.Items[1].Description != "2 launches" {
		t.Errorf("Unexpected second item %+v", list.Items[1])
	}

	list.MoveUp()
	if list.Selected != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", list.Selected)
	}
	if !list.Select("CCAFS") || list.GetSelectedItem().ID != "CCAFS" {
		t.Error("Expected Select to move the cursor")
	}
	if list.Select("Boca Chica") || list.Selected != 2 {
		t.Error("Expected unknown id to leave the cursor alone")
	}

	out := list.Render()
	if !strings.Contains(out, "All Sites") || !strings.Contains(out, "CCAFS") {
		t.Errorf("Expected sites in render, got %q", out)
	}
}

func TestProgressBar(t *testing.T) {
	bar := NewProgressBar(10)
	bar.SetProgress(1, 4)

	out := bar.Render()
	if !strings.Contains(out, "1/4 25.0%") {
		t.Errorf("Unexpected bar %q", out)
	}

	bar.SetProgress(0, 0)
	if !strings.Contains(bar.Render(), "0/0 0.0%") {
		t.Errorf("Expected empty total handled, got %q", bar.Render())
	}
}

func TestPieBars(t *testing.T) {
	spec := &chart.PieSpec{Slices: []chart.Slice{{Label: "1", Value: 3}, {Label: "0", Value: 1}}}

	lines := strings.Split(PieBars(spec, 8, true, DefaultPalette), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected one line per slice, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Success") || !strings.Contains(lines[0], "3/4 75.0%") {
		t.Errorf("Unexpected success bar %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Failure") || !strings.Contains(lines[1], "1/4 25.0%") {
		t.Errorf("Unexpected failure bar %q", lines[1])
	}

	sites := &chart.PieSpec{Slices: []chart.Slice{{Label: "KSC LC-39A", Value: 2}}}
	if !strings.HasPrefix(PieBars(sites, 8, false, DefaultPalette), "KSC LC-39A") {
		t.Error("Expected site labels kept for the all-sites pie")
	}

	if !strings.Contains(PieBars(&chart.PieSpec{}, 8, true, Palette{}), "No launches match") {
		t.Error("Expected placeholder for an empty pie")
	}
}

func TestRangeTrackPosition(t *testing.T) {
	track := &RangeTrack{Min: 0, Max: 10000, Width: 11}

	tests := []struct {
		value float64
		want  int
	}{
		{0, 0},
		{5000, 5},
		{10000, 10},
		{15600, 10},
		{-100, 0},
	}

	for _, tt := range tests {
		if got := track.position(tt.value); got != tt.want {
			t.Errorf("position(%v) = %d, want %d", tt.value, got, tt.want)
		}
	}

	track.Value = chart.PayloadRange{Low: 2000, High: 8000}
	if got := strings.Count(track.Render(), "●"); got != 2 {
		t.Errorf("Expected two handles, got %d", got)
	}
}

func TestCreateLaunchStats(t *testing.T) {
	snapshot := &chart.Snapshot{
		Launches: 5,
		Scatter: chart.ScatterSpec{Series: []chart.Series{
			{Name: "FT", Points: []chart.Point{{X: 100, Y: 1}, {X: 200, Y: 0}}},
			{Name: "B5", Points: []chart.Point{{X: 300, Y: 1}}},
		}},
	}

	cards := CreateLaunchStats(snapshot, DefaultPalette).Cards()
	if len(cards) != 4 {
		t.Fatalf("Expected 4 cards, got %d", len(cards))
	}
	if cards[1].Value != "3" {
		t.Errorf("Expected 3 launches in range, got %q", cards[1].Value)
	}
	if cards[2].Value != "66.7%" || cards[2].Status != "warning" {
		t.Errorf("Unexpected success card %+v", cards[2])
	}
	if cards[3].Value != "2" {
		t.Errorf("Expected 2 boosters, got %q", cards[3].Value)
	}
}

func TestBoosterSummary(t *testing.T) {
	spec := &chart.ScatterSpec{Title: "Payload vs. Outcome for All Sites", Series: []chart.Series{
		{Name: "FT", Points: []chart.Point{{X: 2500, Y: 1}, {X: 500, Y: 0}}},
	}}

	box := BoosterSummary(spec, 60, DefaultPalette)
	if len(box.Content) != 1 || box.Content[0].Key != "FT" ||
		box.Content[0].Value != "2 launches, 1 successes, 500 kg - 2,500 kg" {
		t.Errorf("Unexpected summary %+v", box.Content)
	}
	if box.KeyColor != DefaultPalette.Booster {
		t.Errorf("Expected booster keys in the booster color, got %v", box.KeyColor)
	}
	if !strings.Contains(box.Render(), "FT") {
		t.Error("Expected booster name in render")
	}

	empty := BoosterSummary(&chart.ScatterSpec{}, 60, Palette{})
	if len(empty.Content) != 1 || empty.Content[0].Key != "" || !strings.Contains(empty.Content[0].Value, "No launches match") {
		t.Errorf("Unexpected empty summary %q", empty.Content)
	}
}

func TestPaletteSliceColors(t *testing.T) {
	p := DefaultPalette

	if p.sliceColor(0, "1", true) != p.Success {
		t.Error("Expected class 1 in the success color")
	}
	if p.sliceColor(1, "0", true) != p.Failure {
		t.Error("Expected class 0 in the failure color")
	}
	if p.sliceColor(2, "2", true) != p.Warning {
		t.Error("Expected other classes in the warning color")
	}
	if p.sliceColor(0, "CCAFS LC-40", false) != p.Accent || p.sliceColor(1, "VAFB SLC-4E", false) != p.Booster {
		t.Error("Expected site slices to cycle through the palette")
	}
}

func TestPaletteStatusColors(t *testing.T) {
	p := DefaultPalette

	tests := []struct {
		status string
		want   lipgloss.TerminalColor
	}{
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Failure},
		{"info", p.Accent},
		{"other", p.Muted},
	}
	for _, tt := range tests {
		if got := p.statusColor(tt.status); got != tt.want {
			t.Errorf("statusColor(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}

	if (Palette{}).orDefault() != DefaultPalette {
		t.Error("Expected zero palette to fall back to the default")
	}
}

func TestStatsDashboardAppliesPalette(t *testing.T) {
	custom := DefaultPalette
	custom.Success = DefaultPalette.Booster

	for _, card := range CreateLaunchStats(&chart.Snapshot{}, custom).Cards() {
		if card.Palette != custom {
			t.Errorf("Expected card %s to carry the dashboard palette", card.Title)
		}
	}
}

func TestOutcomeLabel(t *testing.T) {
	tests := map[string]string{"1": "Success", "0": "Failure", "2": "Class 2"}
	for class, want := range tests {
		if got := outcomeLabel(class); got != want {
			t.Errorf("outcomeLabel(%s) = %s, want %s", class, got, want)
		}
	}
}

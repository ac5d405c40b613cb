package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/LaunchDash/internal/ui/components"
)

// Theme colors the dashboard. Outcome colors follow the pie: Success for
// class 1, Failure for class 0.
type Theme struct {
	Name string

	Title    lipgloss.AdaptiveColor
	Heading  lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Border   lipgloss.AdaptiveColor
	Selected lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Failure lipgloss.AdaptiveColor

	// Payload range track and booster categories
	Track   lipgloss.AdaptiveColor
	Booster lipgloss.AdaptiveColor
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Available themes
var (
	DefaultTheme = Theme{
		Name:     "default",
		Title:    adaptive("#503D36", "#E7D3C8"),
		Heading:  adaptive("#1E40AF", "#60A5FA"),
		Muted:    adaptive("#6B7280", "#9CA3AF"),
		Border:   adaptive("#D1D5DB", "#374151"),
		Selected: adaptive("#DBEAFE", "#1E3A8A"),
		Success:  adaptive("#059669", "#10B981"),
		Warning:  adaptive("#D97706", "#F59E0B"),
		Failure:  adaptive("#DC2626", "#EF4444"),
		Track:    adaptive("#3B82F6", "#93C5FD"),
		Booster:  adaptive("#7C3AED", "#A855F7"),
	}

	HighContrastTheme = Theme{
		Name:     "high-contrast",
		Title:    adaptive("#000000", "#FFFFFF"),
		Heading:  adaptive("#000080", "#8080FF"),
		Muted:    adaptive("#444444", "#CCCCCC"),
		Border:   adaptive("#000000", "#FFFFFF"),
		Selected: adaptive("#FFFF00", "#444444"),
		Success:  adaptive("#006600", "#00FF00"),
		Warning:  adaptive("#CC6600", "#FFAA00"),
		Failure:  adaptive("#CC0000", "#FF4444"),
		Track:    adaptive("#0000CC", "#00FFFF"),
		Booster:  adaptive("#800080", "#FF80FF"),
	}

	MinimalTheme = Theme{
		Name:     "minimal",
		Title:    adaptive("#2D3748", "#E2E8F0"),
		Heading:  adaptive("#4A5568", "#CBD5E0"),
		Muted:    adaptive("#A0AEC0", "#718096"),
		Border:   adaptive("#E2E8F0", "#2D3748"),
		Selected: adaptive("#EDF2F7", "#2D3748"),
		Success:  adaptive("#2F855A", "#68D391"),
		Warning:  adaptive("#C05621", "#F6AD55"),
		Failure:  adaptive("#C53030", "#FC8181"),
		Track:    adaptive("#4A5568", "#CBD5E0"),
		Booster:  adaptive("#553C9A", "#B794F6"),
	}
)

var themes = []*Theme{&DefaultTheme, &HighContrastTheme, &MinimalTheme}

var currentTheme = DefaultTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetThemeByName activates the named theme
func SetThemeByName(name string) bool {
	for _, t := range themes {
		if t.Name == name {
			currentTheme = *t
			return true
		}
	}
	return false
}

// ThemeNames lists the available theme names
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name)
	}
	return names
}

// Palette hands the theme colors to the components
func (t Theme) Palette() components.Palette {
	return components.Palette{
		Accent:   t.Heading,
		Muted:    t.Muted,
		Border:   t.Border,
		Selected: t.Selected,
		Track:    t.Track,
		Success:  t.Success,
		Warning:  t.Warning,
		Failure:  t.Failure,
		Booster:  t.Booster,
	}
}

// Styles holds the dashboard's own text styles
type Styles struct {
	Palette components.Palette

	Title     lipgloss.Style
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
}

// GetStyles builds the styles of the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Palette:   theme.Palette(),
		Title:     lipgloss.NewStyle().Foreground(theme.Title).Bold(true).Padding(0, 1),
		Header:    lipgloss.NewStyle().Foreground(theme.Heading).Bold(true),
		Subheader: lipgloss.NewStyle().Foreground(theme.Track).Bold(true),
		Warning:   lipgloss.NewStyle().Foreground(theme.Warning).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(theme.Failure).Bold(true),
	}
}

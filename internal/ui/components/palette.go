package components

import "github.com/charmbracelet/lipgloss"

// Palette carries the active theme's colors into the components
type Palette struct {
	Accent   lipgloss.TerminalColor // titles, range handles
	Muted    lipgloss.TerminalColor // descriptions, empty track
	Border   lipgloss.TerminalColor
	Selected lipgloss.TerminalColor // selected list row background
	Track    lipgloss.TerminalColor // active payload range
	Success  lipgloss.TerminalColor
	Warning  lipgloss.TerminalColor
	Failure  lipgloss.TerminalColor
	Booster  lipgloss.TerminalColor
}

// DefaultPalette is used by components built without a theme
var DefaultPalette = Palette{
	Accent:   lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#60A5FA"},
	Muted:    lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
	Border:   lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"},
	Selected: lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"},
	Track:    lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#93C5FD"},
	Success:  lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"},
	Warning:  lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"},
	Failure:  lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"},
	Booster:  lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A855F7"},
}

// orDefault fills a zero palette with DefaultPalette
func (p Palette) orDefault() Palette {
	if p.Accent == nil {
		return DefaultPalette
	}
	return p
}

// statusColor maps a stats card status onto the palette
func (p Palette) statusColor(status string) lipgloss.TerminalColor {
	switch status {
	case "success":
		return p.Success
	case "warning":
		return p.Warning
	case "error":
		return p.Failure
	case "info":
		return p.Accent
	default:
		return p.Muted
	}
}

// sliceColor picks the bar color of pie slice i. Outcome pies use the
// success and failure colors; site pies cycle through the palette.
func (p Palette) sliceColor(i int, label string, outcomes bool) lipgloss.TerminalColor {
	if outcomes {
		switch label {
		case "1":
			return p.Success
		case "0":
			return p.Failure
		default:
			return p.Warning
		}
	}
	cycle := []lipgloss.TerminalColor{p.Accent, p.Booster, p.Success, p.Warning, p.Track}
	return cycle[i%len(cycle)]
}

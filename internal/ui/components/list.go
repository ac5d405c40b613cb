package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/dataset"
	"github.com/yildizm/LaunchDash/internal/layout"
)

// ListItem represents an item in a list
type ListItem struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

// List represents a navigable list component
type List struct {
	Title       string
	Items       []ListItem
	Selected    int
	Focused     bool
	Width       int
	Height      int
	ShowNumbers bool
	ShowIcons   bool
	Palette     Palette
}

// NewList creates a new list component
func NewList(title string, width, height int) *List {
	return &List{
		Title:       title,
		Width:       width,
		Height:      height,
		ShowNumbers: true,
		ShowIcons:   true,
		Palette:     DefaultPalette,
	}
}

// SetItems sets all items in the list
func (l *List) SetItems(items []ListItem) {
	l.Items = items
	l.Selected = 0
}

// SetFocused sets the focus state of the list
func (l *List) SetFocused(focused bool) {
	l.Focused = focused
}

// GetSelectedItem returns the currently selected item
func (l *List) GetSelectedItem() *ListItem {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return nil
	}
	return &l.Items[l.Selected]
}

// Select moves the cursor to the item with the given id. It reports false
// and leaves the cursor alone when no item matches.
func (l *List) Select(id string) bool {
	for i := range l.Items {
		if l.Items[i].ID == id {
			l.Selected = i
			return true
		}
	}
	return false
}

// MoveUp moves selection up
func (l *List) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
}

// MoveDown moves selection down
func (l *List) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
	}
}

// Render renders the list
func (l *List) Render() string {
	palette := l.Palette.orDefault()

	headerStyle := lipgloss.NewStyle().Foreground(palette.Accent).Bold(true)
	focusedStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(palette.Accent)
	panelStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(palette.Border)
	normalStyle := lipgloss.NewStyle().Foreground(palette.Muted)
	selectedStyle := lipgloss.NewStyle().Background(palette.Selected).Foreground(palette.Accent).Bold(true)

	content := []string{headerStyle.Render(l.Title), ""}

	maxVisible := l.Height - 4 // title and spacing
	if maxVisible < 1 {
		maxVisible = 1
	}

	startIndex := 0
	if l.Selected >= maxVisible {
		startIndex = l.Selected - maxVisible + 1
	}
	endIndex := min(startIndex+maxVisible, len(l.Items))

	for i := startIndex; i < endIndex; i++ {
		style := normalStyle
		if i == l.Selected {
			style = selectedStyle
		}
		content = append(content, style.Width(max(l.Width-4, 1)).Render(l.renderItem(&l.Items[i], i+1)))
	}

	if len(l.Items) > maxVisible {
		scrollInfo := fmt.Sprintf("(%d-%d of %d)", startIndex+1, endIndex, len(l.Items))
		content = append(content, "", normalStyle.Render(scrollInfo))
	}

	joined := lipgloss.JoinVertical(lipgloss.Left, content...)
	if l.Focused {
		return focusedStyle.Width(l.Width).Render(joined)
	}
	return panelStyle.Width(l.Width).Render(joined)
}

func (l *List) renderItem(item *ListItem, number int) string {
	var parts []string
	if l.ShowNumbers {
		parts = append(parts, fmt.Sprintf("%2d.", number))
	}
	if l.ShowIcons && item.Icon != "" {
		parts = append(parts, item.Icon)
	}

	title := item.Title
	if item.Description != "" {
		title += " - " + item.Description
	}
	parts = append(parts, title)

	return strings.Join(parts, " ")
}

// NewSiteList creates the launch site picker. The first item is the
// all-sites entry, followed by the site catalog in first-seen order.
func NewSiteList(ds *dataset.Dataset, width, height int, palette Palette) *List {
	list := NewList("Launch Site", width, height)
	list.Palette = palette.orDefault()

	counts := make(map[string]int)
	for l := range ds.All() {
		counts[l.Site]++
	}

	options := layout.Build(ds).SiteDropdown.Options
	items := make([]ListItem, 0, len(options))
	for _, opt := range options {
		n := ds.Len()
		if opt.Value != chart.AllSites {
			n = counts[opt.Value]
		}
		items = append(items, ListItem{
			ID:          opt.Value,
			Title:       opt.Label,
			Description: fmt.Sprintf("%d launches", n),
		})
	}
	list.SetItems(items)

	return list
}

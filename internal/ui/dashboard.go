package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/dataset"
	"github.com/yildizm/LaunchDash/internal/emoji"
	"github.com/yildizm/LaunchDash/internal/layout"
	"github.com/yildizm/LaunchDash/internal/ui/components"
)

const (
	siteListWidth = 34
	barWidth      = 30
	trackWidth    = 41
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// DashboardModel is the terminal rendition of the launch dashboard. Every
// change to the site or payload selection re-runs both resolvers.
type DashboardModel struct {
	path      string
	dataset   *dataset.Dataset
	layout    layout.Layout
	selection chart.Selection
	snapshot  *chart.Snapshot
	sites     *components.List
	spinner   *components.Spinner
	help      help.Model
	view      View
	width     int
	height    int
	err       error
	quitting  bool
}

// NewDashboardModel creates the dashboard model. When ds is nil the model
// loads path on Init.
func NewDashboardModel(path string, ds *dataset.Dataset) *DashboardModel {
	m := &DashboardModel{
		path:    path,
		spinner: components.NewSpinner(),
		help:    help.New(),
		view:    ViewLoading,
		width:   100,
		height:  40,
	}
	m.spinner.SetLabel("Loading launch records from " + path)

	if ds != nil {
		m.install(ds)
	}

	return m
}

// Init initializes the dashboard model
func (m *DashboardModel) Init() tea.Cmd {
	if m.dataset != nil {
		return nil
	}
	return tea.Batch(LoadDatasetCommand(m.path), tick())
}

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.sites != nil {
			m.sites.Height = m.listHeight()
		}

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		if m.view == ViewLoading && m.err == nil {
			m.spinner.Tick()
			return m, tick()
		}

	case DatasetMsg:
		m.install(msg.Dataset)

	case datasetErrorMsg:
		m.err = msg.err
	}

	return m, nil
}

func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Reload):
		if m.path == "" {
			return m, nil
		}
		return m, LoadDatasetCommand(m.path)
	}

	if m.dataset == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		m.sites.MoveUp()
		m.selectSite()
	case key.Matches(msg, keys.Down):
		m.sites.MoveDown()
		m.selectSite()
	case key.Matches(msg, keys.LowDown):
		m.moveLow(-m.layout.PayloadSlider.Step)
	case key.Matches(msg, keys.LowUp):
		m.moveLow(m.layout.PayloadSlider.Step)
	case key.Matches(msg, keys.HighDown):
		m.moveHigh(-m.layout.PayloadSlider.Step)
	case key.Matches(msg, keys.HighUp):
		m.moveHigh(m.layout.PayloadSlider.Step)
	case key.Matches(msg, keys.Reset):
		m.sites.Selected = 0
		m.selection = chart.DefaultSelection(m.dataset)
		m.refresh()
	}

	return m, nil
}

// install swaps in ds, keeping the current selection when the selected site
// still exists
func (m *DashboardModel) install(ds *dataset.Dataset) {
	site := chart.AllSites
	if m.sites != nil {
		if item := m.sites.GetSelectedItem(); item != nil {
			site = item.ID
		}
	}

	first := m.dataset == nil
	m.dataset = ds
	m.layout = layout.Build(ds)
	m.sites = components.NewSiteList(ds, siteListWidth, m.listHeight(), GetStyles().Palette)
	m.sites.SetFocused(true)
	if !m.sites.Select(site) {
		site = chart.AllSites
	}

	if first {
		m.selection = chart.DefaultSelection(ds)
	}
	m.selection.Site = site
	m.view = ViewDashboard
	m.err = nil
	m.refresh()
}

func (m *DashboardModel) selectSite() {
	if item := m.sites.GetSelectedItem(); item != nil {
		m.selection.Site = item.ID
		m.refresh()
	}
}

// moveLow shifts the low handle, keeping it inside the slider domain and at
// or below the high handle
func (m *DashboardModel) moveLow(delta float64) {
	slider := m.layout.PayloadSlider
	p := m.selection.Payload
	p.Low = clamp(p.Low+delta, slider.Min, math.Min(p.High, slider.Max))
	m.setPayload(p)
}

// moveHigh shifts the high handle, keeping it inside the slider domain and
// at or above the low handle
func (m *DashboardModel) moveHigh(delta float64) {
	slider := m.layout.PayloadSlider
	p := m.selection.Payload
	p.High = clamp(p.High+delta, math.Max(p.Low, slider.Min), slider.Max)
	m.setPayload(p)
}

func (m *DashboardModel) setPayload(p chart.PayloadRange) {
	if p == m.selection.Payload {
		return
	}
	m.selection.Payload = p
	m.refresh()
}

func (m *DashboardModel) refresh() {
	m.snapshot = chart.Resolve(m.dataset, m.selection)
}

func (m *DashboardModel) listHeight() int {
	return max(m.height-12, 8)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Selection returns the current dashboard selection
func (m *DashboardModel) Selection() chart.Selection {
	return m.selection
}

// Snapshot returns the charts for the current selection, nil before the
// dataset is loaded
func (m *DashboardModel) Snapshot() *chart.Snapshot {
	return m.snapshot
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.quitting {
		return "Thanks for using LaunchDash! " + emoji.GetEmoji("rocket") + "\n"
	}

	styles := GetStyles()

	if m.dataset == nil {
		if m.err != nil {
			return lipgloss.JoinVertical(lipgloss.Left,
				styles.Error.Render(emoji.GetEmoji("error")+" "+m.err.Error()),
				"",
				m.help.View(keys),
			)
		}
		m.spinner.Color = styles.Palette.Track
		return m.spinner.Render()
	}

	title := styles.Title.Render(emoji.GetEmoji("rocket") + " " + m.layout.Title.Text)

	var status string
	if m.err != nil {
		status = styles.Warning.Render(emoji.GetEmoji("warning") + " reload failed: " + m.err.Error())
	}

	payload := m.selection.Payload
	track := &components.RangeTrack{
		Min:     m.layout.PayloadSlider.Min,
		Max:     m.layout.PayloadSlider.Max,
		Value:   payload,
		Width:   trackWidth,
		Palette: styles.Palette,
	}

	charts := lipgloss.JoinVertical(lipgloss.Left,
		components.CreateLaunchStats(m.snapshot, styles.Palette).Render(),
		"",
		styles.Header.Render(emoji.GetEmoji("chart")+" "+m.snapshot.Pie.Title),
		components.PieBars(&m.snapshot.Pie, barWidth, !m.selection.IsAll(), styles.Palette),
		"",
		styles.Subheader.Render(fmt.Sprintf("%s %g - %g", m.layout.PayloadLabel, payload.Low, payload.High)),
		track.Render(),
		"",
		components.BoosterSummary(&m.snapshot.Scatter, max(m.width-siteListWidth-4, 40), styles.Palette).Render(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sites.Render(), "  ", charts)

	parts := []string{title, ""}
	if status != "" {
		parts = append(parts, status, "")
	}
	parts = append(parts, body, "", m.help.View(keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// NewProgram wraps model in a full screen tea program
func NewProgram(model *DashboardModel, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
}

// Run starts the dashboard TUI for the dataset at path
func Run(path string, ds *dataset.Dataset) error {
	if _, err := NewProgram(NewDashboardModel(path, ds)).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// Package mcpserver exposes the dashboard resolvers as Model Context
// Protocol tools over stdio.
package mcpserver

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/dataset"
	"github.com/yildizm/LaunchDash/internal/logger"
	"github.com/yildizm/LaunchDash/internal/monitor"
)

// Tool names
const (
	ToolListSites    = "list_sites"
	ToolPieChart     = "pie_chart"
	ToolScatterChart = "scatter_chart"
)

// Server wraps the MCP SDK server around one immutable dataset
type Server struct {
	MCPServer *sdkmcp.Server

	dataset *dataset.Dataset
	metrics *monitor.MetricsCollector
	logger  *logger.Logger
}

// New creates an MCP server with the dashboard tools registered. metrics
// may be nil.
func New(ds *dataset.Dataset, version string, metrics *monitor.MetricsCollector, log *logger.Logger) *Server {
	if log == nil {
		log = logger.New("mcp", nil)
	}

	s := &Server{
		MCPServer: sdkmcp.NewServer(&sdkmcp.Implementation{Name: "launchdash", Version: version}, nil),
		dataset:   ds,
		metrics:   metrics,
		logger:    log,
	}
	s.registerTools()
	return s
}

// Run serves the tools over stdin/stdout until ctx is done or the client
// disconnects
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Serving MCP tools over stdio")
	if err := s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server failed: %w", err)
	}
	return nil
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolListSites,
		Description: "List the launch sites in the dataset with launch and success counts, plus the observed payload mass bounds.",
	}, s.handleListSites)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolPieChart,
		Description: "Pie chart for a site selection. ALL gives successful launches per site; a single site gives success vs. failure counts.",
	}, s.handlePieChart)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolScatterChart,
		Description: "Scatter chart of payload mass against outcome for a site and inclusive payload range, grouped by booster version category.",
	}, s.handleScatterChart)
}

// --- Tool input/output types ---

type listSitesInput struct{}

type siteSummary struct {
	Site      string `json:"site"`
	Launches  int    `json:"launches"`
	Successes int    `json:"successes"`
}

type listSitesOutput struct {
	Sites   []siteSummary      `json:"sites"`
	Payload chart.PayloadRange `json:"payload"`
}

type pieChartInput struct {
	Site string `json:"site,omitempty" jsonschema:"launch site or ALL (default ALL)"`
}

type scatterChartInput struct {
	Site string   `json:"site,omitempty" jsonschema:"launch site or ALL (default ALL)"`
	Low  *float64 `json:"low,omitempty" jsonschema:"lowest payload mass in kg, inclusive (default: dataset minimum)"`
	High *float64 `json:"high,omitempty" jsonschema:"highest payload mass in kg, inclusive (default: dataset maximum)"`
}

// --- Tool handlers ---

func (s *Server) handleListSites(_ context.Context, _ *sdkmcp.CallToolRequest, _ listSitesInput) (*sdkmcp.CallToolResult, listSitesOutput, error) {
	index := make(map[string]int)
	sites := make([]siteSummary, 0, len(s.dataset.Sites()))
	for _, site := range s.dataset.Sites() {
		index[site] = len(sites)
		sites = append(sites, siteSummary{Site: site})
	}

	for l := range s.dataset.All() {
		summary := &sites[index[l.Site]]
		summary.Launches++
		if l.Succeeded() {
			summary.Successes++
		}
	}

	bounds := s.dataset.Bounds()
	return nil, listSitesOutput{
		Sites:   sites,
		Payload: chart.PayloadRange{Low: bounds.Min, High: bounds.Max},
	}, nil
}

func (s *Server) handlePieChart(_ context.Context, _ *sdkmcp.CallToolRequest, input pieChartInput) (*sdkmcp.CallToolResult, chart.PieSpec, error) {
	site := siteOrAll(input.Site)

	var spec chart.PieSpec
	s.track(monitor.OperationPie, func() {
		spec = chart.Pie(s.dataset, site)
	})

	s.logger.DebugWithFields("Pie chart resolved", []logger.Field{
		logger.F("site", site),
		logger.Count(len(spec.Slices)),
	})
	return nil, spec, nil
}

func (s *Server) handleScatterChart(_ context.Context, _ *sdkmcp.CallToolRequest, input scatterChartInput) (*sdkmcp.CallToolResult, chart.ScatterSpec, error) {
	sel := chart.DefaultSelection(s.dataset)
	sel.Site = siteOrAll(input.Site)
	if input.Low != nil {
		sel.Payload.Low = *input.Low
	}
	if input.High != nil {
		sel.Payload.High = *input.High
	}

	var spec chart.ScatterSpec
	s.track(monitor.OperationScatter, func() {
		spec = chart.Scatter(s.dataset, sel.Site, sel.Payload)
	})

	s.logger.DebugWithFields("Scatter chart resolved", []logger.Field{
		logger.F("site", sel.Site),
		logger.F("low", sel.Payload.Low),
		logger.F("high", sel.Payload.High),
		logger.Count(spec.PointCount()),
	})
	return nil, spec, nil
}

func (s *Server) track(op monitor.OperationType, fn func()) {
	if s.metrics == nil {
		fn()
		return
	}
	s.metrics.TrackOperation(op, fn)
}

// siteOrAll maps an omitted site to the all-sites selection
func siteOrAll(site string) string {
	if site == "" {
		return chart.AllSites
	}
	return site
}

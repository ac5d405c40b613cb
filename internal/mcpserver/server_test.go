package mcpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/dataset"
	"github.com/yildizm/LaunchDash/internal/logger"
	"github.com/yildizm/LaunchDash/internal/mcpserver"
	"github.com/yildizm/LaunchDash/internal/monitor"
)

func fixtureDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(filepath.Join("..", "dataset", "testdata", "spacex_launch_dash.csv"))
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	return ds
}

func connectInMemory(t *testing.T, ctx context.Context, srv *mcpserver.Server) *sdkmcp.ClientSession {
	t.Helper()
	t1, t2 := sdkmcp.NewInMemoryTransports()
	if _, err := srv.MCPServer.Connect(ctx, t1, nil); err != nil {
		t.Fatalf("server.Connect: %v", err)
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	if err != nil {
		t.Fatalf("client.Connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callTool[T any](t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) T {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}

	var out T
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			if res.IsError {
				t.Fatalf("CallTool(%s) returned error: %s", name, tc.Text)
			}
			if err := json.Unmarshal([]byte(tc.Text), &out); err != nil {
				t.Fatalf("unmarshal tool result: %v (text: %s)", err, tc.Text)
			}
			return out
		}
	}
	t.Fatalf("no text content in tool result")
	return out
}

func setup(t *testing.T) (context.Context, *sdkmcp.ClientSession, *dataset.Dataset, *monitor.MetricsCollector) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	ds := fixtureDataset(t)
	metrics := monitor.New()
	srv := mcpserver.New(ds, "test", metrics, logger.NewWithWriter("mcp", nil, io.Discard))
	return ctx, connectInMemory(t, ctx, srv), ds, metrics
}

func TestListTools(t *testing.T) {
	ctx, session, _, _ := setup(t)

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	want := []string{mcpserver.ToolListSites, mcpserver.ToolPieChart, mcpserver.ToolScatterChart}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Tools mismatch (-want +got):\n%s", diff)
	}
}

func TestListSites(t *testing.T) {
	ctx, session, ds, _ := setup(t)

	type site struct {
		Site      string `json:"site"`
		Launches  int    `json:"launches"`
		Successes int    `json:"successes"`
	}
	out := callTool[struct {
		Sites   []site             `json:"sites"`
		Payload chart.PayloadRange `json:"payload"`
	}](t, ctx, session, mcpserver.ToolListSites, map[string]any{})

	if len(out.Sites) != len(ds.Sites()) {
		t.Fatalf("Expected %d sites, got %d", len(ds.Sites()), len(out.Sites))
	}
	if out.Sites[0] != (site{Site: "CCAFS LC-40", Launches: 5, Successes: 1}) {
		t.Errorf("Unexpected first site %+v", out.Sites[0])
	}
	if out.Payload != (chart.PayloadRange{Low: 0, High: 15600}) {
		t.Errorf("Unexpected payload bounds %+v", out.Payload)
	}
}

func TestPieChartMatchesResolver(t *testing.T) {
	ctx, session, ds, metrics := setup(t)

	tests := []struct {
		name string
		args map[string]any
		site string
	}{
		{"default is all sites", map[string]any{}, chart.AllSites},
		{"single site", map[string]any{"site": "KSC LC-39A"}, "KSC LC-39A"},
		{"unknown site", map[string]any{"site": "Boca Chica"}, "Boca Chica"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := callTool[chart.PieSpec](t, ctx, session, mcpserver.ToolPieChart, tt.args)
			if diff := cmp.Diff(chart.Pie(ds, tt.site), got); diff != "" {
				t.Errorf("Pie mismatch (-want +got):\n%s", diff)
			}
		})
	}

	snapshot, err := metrics.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if got := snapshot.Operation(monitor.OperationPie).Count; got != int64(len(tests)) {
		t.Errorf("Expected %d tracked pie operations, got %d", len(tests), got)
	}
}

func TestScatterChartMatchesResolver(t *testing.T) {
	ctx, session, ds, _ := setup(t)

	got := callTool[chart.ScatterSpec](t, ctx, session, mcpserver.ToolScatterChart, map[string]any{
		"site": "VAFB SLC-4E",
		"low":  1000,
		"high": 10000,
	})
	want := chart.Scatter(ds, "VAFB SLC-4E", chart.PayloadRange{Low: 1000, High: 10000})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scatter mismatch (-want +got):\n%s", diff)
	}

	got = callTool[chart.ScatterSpec](t, ctx, session, mcpserver.ToolScatterChart, map[string]any{})
	if got.PointCount() != ds.Len() {
		t.Errorf("Expected every launch with default range, got %d", got.PointCount())
	}
	if got.Payload != (chart.PayloadRange{Low: 0, High: 15600}) {
		t.Errorf("Expected dataset bounds, got %+v", got.Payload)
	}
}

package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/config"
	"github.com/yildizm/LaunchDash/internal/dataset"
	"github.com/yildizm/LaunchDash/internal/layout"
	"github.com/yildizm/LaunchDash/internal/logger"
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

func newTestServer(t *testing.T) (*Server, *dataset.Dataset) {
	t.Helper()

	ds := fixtureDataset(t)
	s, err := New(config.DefaultConfig(), ds, monitor.New(), logger.NewWithWriter("server", nil, io.Discard))
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	return s, ds
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestCallbacks(t *testing.T) {
	ds := fixtureDataset(t)
	c := DefaultCallbacks(ds)

	want := []string{layout.PieGraphID, layout.ScatterGraphID}
	if diff := cmp.Diff(want, c.Outputs()); diff != "" {
		t.Errorf("Outputs mismatch (-want +got):\n%s", diff)
	}

	scatter, ok := c.Lookup(layout.ScatterGraphID)
	if !ok {
		t.Fatal("Expected scatter callback")
	}
	if diff := cmp.Diff([]string{layout.SiteDropdownID, layout.PayloadSliderID}, scatter.Inputs); diff != "" {
		t.Errorf("Scatter inputs mismatch (-want +got):\n%s", diff)
	}

	pie, _ := c.Lookup(layout.PieGraphID)
	sel := chart.Selection{Site: "KSC LC-39A", Payload: chart.PayloadRange{Low: 0, High: 10000}}
	if diff := cmp.Diff(chart.Pie(ds, sel.Site), pie.Resolve(sel)); diff != "" {
		t.Errorf("Pie callback differs from resolver (-want +got):\n%s", diff)
	}

	if _, ok := c.Lookup("unknown"); ok {
		t.Error("Expected no callback for unknown output")
	}

	resolve := func(chart.Selection) any { return nil }
	tests := []struct {
		name string
		cb   Callback
	}{
		{"duplicate output", Callback{Output: layout.PieGraphID, Resolve: resolve}},
		{"empty output", Callback{Resolve: resolve}},
		{"missing resolver", Callback{Output: "other"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Register(tt.cb); err == nil {
				t.Error("Expected registration error")
			}
		})
	}
}

func TestFigureSpecMatchesResolvers(t *testing.T) {
	s, ds := newTestServer(t)
	h := s.Handler()

	rec := get(t, h, "/api/figures/success-pie-chart?site=CCAFS+LC-40")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if diff := cmp.Diff(chart.Pie(ds, "CCAFS LC-40"), decode[chart.PieSpec](t, rec)); diff != "" {
		t.Errorf("Pie mismatch (-want +got):\n%s", diff)
	}

	rec = get(t, h, "/api/figures/success-payload-scatter-chart?site=ALL&low=2000&high=6000")
	want := chart.Scatter(ds, chart.AllSites, chart.PayloadRange{Low: 2000, High: 6000})
	if diff := cmp.Diff(want, decode[chart.ScatterSpec](t, rec)); diff != "" {
		t.Errorf("Scatter mismatch (-want +got):\n%s", diff)
	}
}

func TestFigureSpecDefaults(t *testing.T) {
	s, ds := newTestServer(t)

	rec := get(t, s.Handler(), "/api/figures/success-payload-scatter-chart")
	got := decode[chart.ScatterSpec](t, rec)
	if got.Payload != (chart.PayloadRange{Low: 0, High: 15600}) {
		t.Errorf("Expected dataset bounds, got %+v", got.Payload)
	}
	if got.PointCount() != ds.Len() {
		t.Errorf("Expected %d points, got %d", ds.Len(), got.PointCount())
	}
	if got.Title != "Payload vs. Outcome for All Sites" {
		t.Errorf("Unexpected title %q", got.Title)
	}

	// an explicit empty site is a literal site, not ALL
	rec = get(t, s.Handler(), "/api/figures/success-pie-chart?site=")
	pie := decode[chart.PieSpec](t, rec)
	if len(pie.Slices) != 0 || pie.Title != "Success vs. Failure for " {
		t.Errorf("Unexpected pie for empty site %+v", pie)
	}
}

func TestRequestErrors(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	tests := []struct {
		target string
		code   int
	}{
		{"/api/figures/success-payload-scatter-chart?low=abc", http.StatusBadRequest},
		{"/api/figures/success-payload-scatter-chart?high=NaN", http.StatusBadRequest},
		{"/api/figures/success-payload-scatter-chart?low=-Inf", http.StatusBadRequest},
		{"/figures/success-pie-chart.svg?low=1e", http.StatusBadRequest},
		{"/api/figures/unknown-chart", http.StatusNotFound},
		{"/figures/unknown-chart.svg", http.StatusNotFound},
		{"/figures/success-pie-chart.gif", http.StatusNotFound},
		{"/figures/success-pie-chart", http.StatusNotFound},
		{"/no/such/route", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, h, tt.target)
			if rec.Code != tt.code {
				t.Errorf("Expected %d, got %d: %s", tt.code, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestFigureImages(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	rec := get(t, h, "/figures/success-pie-chart.svg?site=ALL")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("Expected SVG body")
	}

	rec = get(t, h, "/figures/success-payload-scatter-chart.png?site=KSC+LC-39A&low=0&high=10000")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("Expected PNG body")
	}

	// nothing in range still renders a placeholder
	rec = get(t, h, "/figures/success-payload-scatter-chart.svg?low=0&high=0")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "No launches match") {
		t.Errorf("Expected placeholder figure, got %d", rec.Code)
	}
}

func TestLayoutAndIndex(t *testing.T) {
	s, ds := newTestServer(t)
	h := s.Handler()

	rec := get(t, h, "/api/layout")
	if diff := cmp.Diff(layout.Build(ds), decode[layout.Layout](t, rec)); diff != "" {
		t.Errorf("Layout mismatch (-want +got):\n%s", diff)
	}

	rec = get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"SpaceX Launch Records Dashboard",
		`<option value="ALL" selected>All Sites</option>`,
		`id="success-pie-chart"`,
		`id="success-payload-scatter-chart"`,
		`data-value="15600"`,
		"Payload range (Kg):",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
	for _, site := range ds.Sites() {
		if !strings.Contains(body, ">"+site+"</option>") {
			t.Errorf("Expected option for %q", site)
		}
	}
}

func TestRequestID(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	rec := get(t, h, "/health")
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("Expected uuid request id, got %q", rec.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("Expected caller request id echoed, got %q", rec.Header().Get(RequestIDHeader))
	}
}

func TestHealthAndMetrics(t *testing.T) {
	ds := fixtureDataset(t)
	metrics := monitor.New()
	s, err := New(config.DefaultConfig(), ds, metrics, logger.NewWithWriter("server", nil, io.Discard))
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	h := s.Handler()

	health := decode[map[string]any](t, get(t, h, "/health"))
	if health["status"] != "ok" || health["launches"] != float64(12) || health["sites"] != float64(4) {
		t.Errorf("Unexpected health %+v", health)
	}

	get(t, h, "/figures/success-pie-chart.svg")
	get(t, h, "/api/figures/success-payload-scatter-chart?low=bad")

	snapshot, err := metrics.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if snapshot.Operation(monitor.OperationPie).Count != 1 {
		t.Errorf("Expected one pie resolution, got %+v", snapshot.Operation(monitor.OperationPie))
	}
	if snapshot.Operation(monitor.OperationRender).SuccessCount != 1 {
		t.Errorf("Expected one render, got %+v", snapshot.Operation(monitor.OperationRender))
	}
	if snapshot.Operation(monitor.OperationScatter).Count != 0 {
		t.Error("Expected rejected query to skip the resolver")
	}

	rec := get(t, h, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `launchdash_http_requests_total{code="400",route="GET /api/figures/{output}"} 1`) {
		t.Errorf("Expected request counter in exposition, got:\n%s", body)
	}

	// health, figure, rejected query and the scrape itself
	got, err := testutil.GatherAndCount(metrics.Registry(), monitor.RequestsTotalName)
	if err != nil {
		t.Fatalf("GatherAndCount failed: %v", err)
	}
	if got != 4 {
		t.Errorf("Expected 4 request series, got %d", got)
	}
}

func TestNewRejectsBadFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Charts.Format = "gif"

	if _, err := New(cfg, dataset.New(nil), nil, nil); err == nil {
		t.Error("Expected error for unsupported chart format")
	}
}

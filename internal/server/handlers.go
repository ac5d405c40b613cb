package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yildizm/LaunchDash/internal/chart"
	"github.com/yildizm/LaunchDash/internal/logger"
	"github.com/yildizm/LaunchDash/internal/monitor"
	"github.com/yildizm/LaunchDash/internal/render"
)

// RequestIDHeader carries the per-request id on every response
const RequestIDHeader = "X-Request-ID"

// Query parameters decoded into a selection
const (
	ParamSite = "site"
	ParamLow  = "low"
	ParamHigh = "high"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument tags every response with a request id, counts it per route
// pattern and logs it
func (s *Server) instrument(next *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		route := "unmatched"
		if _, pattern := next.Handler(r); pattern != "" {
			route = pattern
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.metrics.ObserveRequest(route, rec.status)
		s.logger.DebugWithFields("Request served", []logger.Field{
			logger.F("request_id", id),
			logger.F("method", r.Method),
			logger.F("path", r.URL.Path),
			logger.F("status", rec.status),
			logger.Duration(time.Since(start)),
		})
	})
}

// selection decodes the widget values from the query. Missing values fall
// back to the dashboard defaults; anything that is not a finite number is
// rejected before reaching a resolver.
func (s *Server) selection(q url.Values) (chart.Selection, error) {
	sel := chart.DefaultSelection(s.dataset)

	if q.Has(ParamSite) {
		sel.Site = q.Get(ParamSite)
	}

	var err error
	if q.Has(ParamLow) {
		if sel.Payload.Low, err = parseMass(ParamLow, q.Get(ParamLow)); err != nil {
			return chart.Selection{}, err
		}
	}
	if q.Has(ParamHigh) {
		if sel.Payload.High, err = parseMass(ParamHigh, q.Get(ParamHigh)); err != nil {
			return chart.Selection{}, err
		}
	}

	return sel, nil
}

func parseMass(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s payload mass %q: %w", name, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s payload mass %q: must be finite", name, raw)
	}
	return v, nil
}

// resolve looks up the callback for output and runs it for the request's
// selection. It writes the error response itself and reports false on
// failure.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request, output string) (any, bool) {
	cb, ok := s.callbacks.Lookup(output)
	if !ok {
		s.writeJSONError(w, http.StatusNotFound, fmt.Sprintf("unknown output: %s", output))
		return nil, false
	}

	sel, err := s.selection(r.URL.Query())
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	done := s.metrics.Track(cb.Operation)
	figure := cb.Resolve(sel)
	done(nil)

	return figure, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to encode response: %v", err)
	}
}

func (s *Server) writeJSONError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.layout)
}

// handleFigureSpec returns the chart specification for an output slot
func (s *Server) handleFigureSpec(w http.ResponseWriter, r *http.Request) {
	figure, ok := s.resolve(w, r, r.PathValue("output"))
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, figure)
}

// handleFigureImage renders an output slot as <output>.<svg|png>
func (s *Server) handleFigureImage(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	dot := strings.LastIndexByte(file, '.')
	if dot <= 0 {
		s.writeJSONError(w, http.StatusNotFound, fmt.Sprintf("unknown figure: %s", file))
		return
	}

	format, err := render.ParseFormat(file[dot+1:])
	if err != nil {
		s.writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	figure, ok := s.resolve(w, r, file[:dot])
	if !ok {
		return
	}

	var buf bytes.Buffer
	done := s.metrics.Track(monitor.OperationRender)
	err = s.renderer.Figure(&buf, figure, format)
	done(err)
	if err != nil {
		s.logger.ErrorWithFields("Failed to render figure", []logger.Field{
			logger.F("output", file[:dot]),
			logger.Error(err),
		})
		s.writeJSONError(w, http.StatusInternalServerError, "failed to render figure")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Debug("Failed to write figure: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"launches":  s.dataset.Len(),
		"sites":     len(s.dataset.Sites()),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

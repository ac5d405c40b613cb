package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

type staticChecker bool

func (s staticChecker) IsVerbose() bool { return bool(s) }

func TestVerboseGating(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter("server", staticChecker(tt.verbose), &buf)

			log.Debug("debug %d", 1)
			log.Info("info %d", 2)
			log.Warn("warn %d", 3)
			log.Error("error %d", 4)

			out := buf.String()
			if strings.Contains(out, "debug 1") != tt.wantDebug {
				t.Errorf("Debug presence = %v, want %v:\n%s", !tt.wantDebug, tt.wantDebug, out)
			}
			if strings.Contains(out, "info 2") != tt.wantDebug {
				t.Errorf("Info presence = %v, want %v:\n%s", !tt.wantDebug, tt.wantDebug, out)
			}
			if !strings.Contains(out, "warn 3") || !strings.Contains(out, "error 4") {
				t.Errorf("Expected warn and error lines:\n%s", out)
			}
			if !strings.Contains(out, "WARN") || !strings.Contains(out, "server") {
				t.Errorf("Expected level and component in output:\n%s", out)
			}
		})
	}
}

func TestCallbackChecker(t *testing.T) {
	verbose := false
	var buf bytes.Buffer
	log := newLogger("cli", &callbackChecker{callback: func() bool { return verbose }}, newRoot(&buf))

	log.Info("hidden")
	verbose = true
	log.Info("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("Expected info suppressed while not verbose")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Expected info once verbose")
	}

	if (&callbackChecker{}).IsVerbose() {
		t.Error("Expected nil callback to report non-verbose")
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("dataset", staticChecker(true), &buf)

	log.InfoWithFields("loaded %s", []Field{Count(56), Duration(2 * time.Millisecond), F("sites", 4)}, "launches.csv")
	log.ErrorWithFields("failed", []Field{Error(errors.New("boom"))})

	out := buf.String()
	for _, want := range []string{"loaded launches.csv", `"count": 56`, `"sites": 4`, `"error": "boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("", staticChecker(false), &buf)
	if log.Component() != "main" {
		t.Errorf("Expected default component main, got %q", log.Component())
	}

	child := log.WithComponent("render")
	child.Warn("slow")

	if child.Component() != "render" {
		t.Errorf("Expected component render, got %q", child.Component())
	}
	if !strings.Contains(buf.String(), "render") || strings.Contains(buf.String(), "main.render") {
		t.Errorf("Expected component replaced, not nested:\n%s", buf.String())
	}
}

package config

import (
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}

	if cfg.Dataset.Path != "spacex_launch_dash.csv" {
		t.Errorf("Expected dataset path spacex_launch_dash.csv, got %s", cfg.Dataset.Path)
	}

	if cfg.Server.Address() != "127.0.0.1:8050" {
		t.Errorf("Expected address 127.0.0.1:8050, got %s", cfg.Server.Address())
	}

	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}

	if cfg.Charts.Format != "svg" {
		t.Errorf("Expected chart format svg, got %s", cfg.Charts.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty dataset path",
			mutate:  func(c *Config) { c.Dataset.Path = "" },
			wantErr: true,
			errMsg:  "dataset path must not be empty",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
			errMsg:  "invalid server port: 70000 (must be between 0 and 65535)",
		},
		{
			name:    "negative shutdown timeout",
			mutate:  func(c *Config) { c.Server.ShutdownTimeout = -time.Second },
			wantErr: true,
			errMsg:  "shutdown_timeout must be non-negative",
		},
		{
			name:    "zero chart width",
			mutate:  func(c *Config) { c.Charts.Width = 0 },
			wantErr: true,
			errMsg:  "chart size must be positive, got 0x420",
		},
		{
			name:    "invalid chart format",
			mutate:  func(c *Config) { c.Charts.Format = "gif" },
			wantErr: true,
			errMsg:  "invalid chart format: gif (must be one of: svg, png)",
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "invalid" },
			wantErr: true,
			errMsg:  "invalid output format: invalid (must be one of: text, json, markdown, csv, yaml)",
		},
		{
			name:    "invalid color mode",
			mutate:  func(c *Config) { c.Output.ColorMode = "sometimes" },
			wantErr: true,
			errMsg:  "invalid color mode: sometimes (must be one of: auto, always, never)",
		},
		{
			name:    "invalid theme",
			mutate:  func(c *Config) { c.UI.Theme = "neon" },
			wantErr: true,
			errMsg:  "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Expected error message %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestSampleConfigsParse(t *testing.T) {
	for name, content := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			var cfg Config
			if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
				t.Fatalf("Sample config does not parse: %v", err)
			}

			merged := DefaultConfig()
			mergeConfigs(merged, &cfg)
			if err := merged.Validate(); err != nil {
				t.Errorf("Sample config does not validate: %v", err)
			}
			if merged.Server.Port != 8050 {
				t.Errorf("Expected port 8050, got %d", merged.Server.Port)
			}
		})
	}

	if !strings.Contains(SampleConfig(), "shutdown_timeout: 5s") {
		t.Error("Expected full sample to document shutdown_timeout")
	}
}

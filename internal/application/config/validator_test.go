package config

import (
	"strings"
	"testing"

	"github.com/doeshing/coach-go/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		Preferences: domain.Preferences{DefaultModel: "gemini"},
		Models:      []domain.ModelDefinition{{Name: "gemini", Provider: "gemini", ModelID: domain.DefaultModelID}},
		Server:      domain.ServerSettings{Mode: "release", MetricsPath: "/metrics"},
		History:     domain.HistorySettings{Backend: "file"},
		Logging:     domain.LoggingSettings{Level: "info", Format: "console"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*domain.Config) {}},
		{name: "empty default picks first", mutate: func(c *domain.Config) { c.Preferences.DefaultModel = "" }},
		{name: "no models", mutate: func(c *domain.Config) { c.Models = nil }, wantErr: "at least one model"},
		{name: "missing default", mutate: func(c *domain.Config) { c.Preferences.DefaultModel = "gpt" }, wantErr: "does not exist"},
		{name: "duplicate model", mutate: func(c *domain.Config) { c.Models = append(c.Models, c.Models[0]) }, wantErr: "declared twice"},
		{name: "bad provider", mutate: func(c *domain.Config) { c.Models[0].Provider = "bard" }, wantErr: "provider must be"},
		{name: "negative timeout", mutate: func(c *domain.Config) { c.Preferences.TimeoutSeconds = -1 }, wantErr: "timeout"},
		{name: "bad mode", mutate: func(c *domain.Config) { c.Server.Mode = "prod" }, wantErr: "server.mode"},
		{name: "metrics collides", mutate: func(c *domain.Config) { c.Server.MetricsPath = "/healthz" }, wantErr: "collides"},
		{name: "bad backend", mutate: func(c *domain.Config) { c.History.Backend = "redis" }, wantErr: "history.backend"},
		{name: "sqlite default path", mutate: func(c *domain.Config) { c.History.Backend = "sqlite" }},
		{name: "sqlite db path", mutate: func(c *domain.Config) { c.History = domain.HistorySettings{Backend: "sqlite", Path: "~/.coach/history.db"} }},
		{name: "sqlite json path", mutate: func(c *domain.Config) { c.History = domain.HistorySettings{Backend: "sqlite", Path: "~/.coach/history.json"} }, wantErr: "JSON file"},
		{name: "file db path", mutate: func(c *domain.Config) { c.History.Path = "/tmp/history.db" }, wantErr: "database file"},
		{name: "bad log format", mutate: func(c *domain.Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

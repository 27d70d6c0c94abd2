package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/coach-go/assets"
	"github.com/doeshing/coach-go/internal/domain"
)

func TestLoadWritesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coach", "config.yaml")

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if !bytes.Equal(written, assets.DefaultConfigYAML) {
		t.Error("written config differs from embedded defaults")
	}

	model, err := cfg.GetDefaultModel()
	if err != nil {
		t.Fatalf("GetDefaultModel() error = %v", err)
	}
	if model.ModelID != domain.DefaultModelID || model.AuthEnvVar != "GEMINI_API_KEY" {
		t.Errorf("default model = %+v", model)
	}
	if cfg.GetServerAddr() != ":3000" || cfg.GetHistoryBackend() != domain.HistoryBackendFile {
		t.Errorf("server/history defaults = %q %q", cfg.GetServerAddr(), cfg.GetHistoryBackend())
	}
	if cfg.ProviderTimeout() != 0 {
		t.Errorf("ProviderTimeout() = %s, want unbounded", cfg.ProviderTimeout())
	}
	if err := cfg.ValidateConsistency(); err != nil {
		t.Errorf("default config inconsistent: %v", err)
	}
}

func TestLoadHonoursEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := `
preferences:
  default_model: local
  timeout: 45
models:
  - name: local
    provider: ollama
    endpoint: http://localhost:11434/v1/chat/completions
    model_id: llama3
history:
  backend: SQLITE
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	loader := NewFileLoader("")
	if loader.Path() != path {
		t.Fatalf("Path() = %q, want %q", loader.Path(), path)
	}
	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Preferences.DefaultModel != "local" || cfg.ProviderTimeout().Seconds() != 45 {
		t.Errorf("preferences = %+v", cfg.Preferences)
	}
	if cfg.History.Backend != domain.HistoryBackendSQLite {
		t.Errorf("history backend = %q", cfg.History.Backend)
	}
	if cfg.Logging.Level != "info" || cfg.Server.MetricsPath != "/metrics" {
		t.Errorf("hydrated defaults missing: %+v %+v", cfg.Logging, cfg.Server)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("models: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Preferences.DefaultModel = "claude-sonnet"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Preferences.DefaultModel != "claude-sonnet" || len(loaded.Models) != len(cfg.Models) {
		t.Errorf("round trip lost data: %+v", loaded.Preferences)
	}
}

func TestBackupAndReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg := DefaultConfig()
	cfg.Preferences.TimeoutSeconds = 30
	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	backup, err := loader.Backup()
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if backup != path+".bak" {
		t.Errorf("backup path = %q", backup)
	}

	reset, err := loader.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if reset.Preferences.TimeoutSeconds != 0 {
		t.Errorf("reset timeout = %d, want 0", reset.Preferences.TimeoutSeconds)
	}

	saved, err := NewFileLoader(backup).Load(context.Background())
	if err != nil {
		t.Fatalf("Load(backup) error = %v", err)
	}
	if saved.Preferences.TimeoutSeconds != 30 {
		t.Errorf("backup timeout = %d, want 30", saved.Preferences.TimeoutSeconds)
	}
}

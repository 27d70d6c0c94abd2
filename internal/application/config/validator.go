package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/doeshing/coach-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if len(cfg.Models) == 0 {
		return errors.New("at least one model must be configured")
	}
	if cfg.Preferences.DefaultModel == "" {
		cfg.Preferences.DefaultModel = cfg.Models[0].Name
	}
	if err := cfg.ValidateConsistency(); err != nil {
		return err
	}
	if err := validateModels(cfg.Models); err != nil {
		return err
	}
	if cfg.Preferences.TimeoutSeconds < 0 {
		return fmt.Errorf("preferences.timeout must be >= 0")
	}
	if err := validateServer(cfg.Server); err != nil {
		return err
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	return validateLogging(cfg.Logging)
}

func validateModels(models []domain.ModelDefinition) error {
	seen := make(map[string]bool, len(models))
	for i, model := range models {
		if model.Name == "" {
			return fmt.Errorf("models[%d].name must be set", i)
		}
		if seen[model.Name] {
			return fmt.Errorf("model %s declared twice", model.Name)
		}
		seen[model.Name] = true
		if model.MaxTokens < 0 {
			return fmt.Errorf("model %s: max_tokens must be >= 0", model.Name)
		}
		switch domain.ProviderKind(strings.ToLower(model.Provider)) {
		case "", domain.ProviderKindGemini, domain.ProviderKindOpenAI, domain.ProviderKindAnthropic, domain.ProviderKindOllama:
		default:
			return fmt.Errorf("model %s: provider must be gemini|openai|anthropic|ollama, got %s", model.Name, model.Provider)
		}
	}
	return nil
}

func validateServer(server domain.ServerSettings) error {
	switch strings.ToLower(server.Mode) {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug|release|test, got %s", server.Mode)
	}
	if server.MetricsPath != "" && !strings.HasPrefix(server.MetricsPath, "/") {
		return fmt.Errorf("server.metrics_path must start with /, got %s", server.MetricsPath)
	}
	if server.MetricsPath == "/" || server.MetricsPath == "/api/generate" || server.MetricsPath == "/healthz" {
		return fmt.Errorf("server.metrics_path %s collides with a built-in route", server.MetricsPath)
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	backend := strings.ToLower(history.Backend)
	switch backend {
	case "", domain.HistoryBackendFile, domain.HistoryBackendSQLite:
	default:
		return fmt.Errorf("history.backend must be file|sqlite, got %s", history.Backend)
	}

	ext := strings.ToLower(filepath.Ext(history.Path))
	if backend == domain.HistoryBackendSQLite && ext == ".json" {
		return fmt.Errorf("history.path %s is a JSON file; unset it or point it at a .db file for the sqlite backend", history.Path)
	}
	if backend != domain.HistoryBackendSQLite && (ext == ".db" || ext == ".sqlite") {
		return fmt.Errorf("history.path %s is a database file; unset it or point it at a .json file for the file backend", history.Path)
	}
	return nil
}

func validateLogging(logging domain.LoggingSettings) error {
	switch strings.ToLower(logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console|json, got %s", logging.Format)
	}
	return nil
}

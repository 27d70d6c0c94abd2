// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core (prompt building, generation, history) depends only on
// these interfaces. Concrete adapters such as the Gemini HTTP provider, the
// history file and SQLite stores and the YAML config loader live in the
// infrastructure layer.
package ports

import (
	"context"

	"github.com/doeshing/coach-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.coach/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ProviderFactory builds AI provider instances based on model definitions.
type ProviderFactory interface {
	ForModel(domain.ModelDefinition) (Provider, error)
}

// Provider wraps one external text-generation API.
// Failures reported by the API surface as *domain.ProviderError.
type Provider interface {
	Name() string
	Model() domain.ModelDefinition
	Generate(context.Context, ProviderRequest) (ProviderResponse, error)
}

// ProviderRequest carries a single fully built prompt.
type ProviderRequest struct {
	Prompt string
	Model  domain.ModelDefinition
}

// ProviderResponse is the generated text.
type ProviderResponse struct {
	Text string
}

// PromptBuilder maps a request to the instruction string sent upstream.
type PromptBuilder interface {
	Build(domain.GenerationRequest) (string, error)
}

// Generator turns a request into a displayable result. The in-process service
// and the remote HTTP client both satisfy it.
type Generator interface {
	Generate(context.Context, domain.GenerationRequest) domain.GenerationResult
}

// HistoryRepository is the client-local ordered history list.
// Append puts the entry at the front; Clear removes the persisted list entirely.
type HistoryRepository interface {
	Load(context.Context) ([]domain.HistoryEntry, error)
	Append(context.Context, domain.HistoryEntry) error
	Clear(context.Context) error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

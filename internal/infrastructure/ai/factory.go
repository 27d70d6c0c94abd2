// Package ai adapts configured model endpoints to ports.Provider.
//
// Every provider shares one HTTP provider implementation; per-vendor wire
// formats are plugged in through providerAdapter.
package ai

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/ports"
)

// Factory builds providers that share a single HTTP client.
type Factory struct {
	httpClient *http.Client
}

// Option configures a Factory.
type Option func(*Factory)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Factory) {
		f.httpClient = c
	}
}

// NewFactory returns a Factory. The default client sets no timeout; callers
// bound calls through the context instead.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{httpClient: &http.Client{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) ForModel(model domain.ModelDefinition) (ports.Provider, error) {
	providerKind := ProviderKindFor(model)

	switch providerKind {
	case domain.ProviderKindGemini:
		return newHTTPProvider("gemini", model, f.httpClient, geminiAdapter()), nil
	case domain.ProviderKindAnthropic:
		return newHTTPProvider("anthropic", model, f.httpClient, anthropicAdapter()), nil
	case domain.ProviderKindOpenAI:
		return newHTTPProvider("openai", model, f.httpClient, openaiAdapter()), nil
	case domain.ProviderKindOllama:
		return newHTTPProvider("ollama", model, f.httpClient, ollamaAdapter()), nil
	default:
		return nil, fmt.Errorf("cannot infer provider for model %q (endpoint %q); set provider explicitly", model.Name, model.Endpoint)
	}
}

// ProviderKindFor honours an explicit provider field, then infers from the
// endpoint and model name.
func ProviderKindFor(model domain.ModelDefinition) domain.ProviderKind {
	if model.Provider != "" {
		switch kind := domain.ProviderKind(strings.ToLower(model.Provider)); kind {
		case domain.ProviderKindGemini, domain.ProviderKindOpenAI, domain.ProviderKindAnthropic, domain.ProviderKindOllama:
			return kind
		}
		return domain.ProviderKindUnknown
	}
	return inferProviderKind(model.Endpoint, model.Name)
}

func inferProviderKind(endpoint string, name string) domain.ProviderKind {
	nameLower := strings.ToLower(name)

	switch {
	case strings.Contains(endpoint, "generativelanguage.googleapis.com"), strings.Contains(nameLower, "gemini"):
		return domain.ProviderKindGemini
	case strings.Contains(endpoint, "anthropic.com"):
		return domain.ProviderKindAnthropic
	case strings.Contains(endpoint, "openai.com"):
		return domain.ProviderKindOpenAI
	case strings.Contains(nameLower, "ollama"), strings.Contains(endpoint, "11434"), strings.Contains(endpoint, "localhost"):
		return domain.ProviderKindOllama
	default:
		return domain.ProviderKindUnknown
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)

// Package domain defines core business entities and value objects for coach.
//
// This file contains AI model and provider definitions. The domain layer is
// independent of infrastructure concerns.
package domain

// ProviderKind identifies which wire format a model endpoint speaks.
type ProviderKind string

const (
	ProviderKindGemini    ProviderKind = "gemini"
	ProviderKindOpenAI    ProviderKind = "openai"
	ProviderKindAnthropic ProviderKind = "anthropic"
	ProviderKindOllama    ProviderKind = "ollama"
	ProviderKindUnknown   ProviderKind = "unknown"
)

// ModelDefinition describes a text-generation endpoint declared in the config file.
type ModelDefinition struct {
	Name       string `yaml:"name"`
	Provider   string `yaml:"provider,omitempty"`
	Endpoint   string `yaml:"endpoint"`
	AuthEnvVar string `yaml:"auth_env_var"`
	OrgEnvVar  string `yaml:"org_env_var,omitempty"`
	ModelID    string `yaml:"model_id"`
	MaxTokens  int    `yaml:"max_tokens,omitempty"`
}

// DefaultModelID is the fixed model identifier generations use out of the box.
const DefaultModelID = "gemini-2.0-flash"

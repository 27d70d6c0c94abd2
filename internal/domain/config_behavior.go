package domain

import (
	"fmt"
	"strings"
	"time"
)

// GetDefaultModel retrieves the default model definition from configuration
// Returns an error if the default model is not found
func (c *Config) GetDefaultModel() (ModelDefinition, error) {
	if c.Preferences.DefaultModel == "" {
		return ModelDefinition{}, fmt.Errorf("no default model configured")
	}

	for _, model := range c.Models {
		if model.Name == c.Preferences.DefaultModel {
			return model, nil
		}
	}

	return ModelDefinition{}, fmt.Errorf("default model %s not found in configuration", c.Preferences.DefaultModel)
}

// FindModelByName searches for a model by its name
func (c *Config) FindModelByName(name string) (ModelDefinition, bool) {
	for _, model := range c.Models {
		if model.Name == name {
			return model, true
		}
	}
	return ModelDefinition{}, false
}

// HasModel checks if a model with the given name exists in the configuration
func (c *Config) HasModel(name string) bool {
	_, exists := c.FindModelByName(name)
	return exists
}

// SetDefaultModel points preferences.default_model at an existing model.
func (c *Config) SetDefaultModel(name string) error {
	if !c.HasModel(name) {
		return fmt.Errorf("model %s not found", name)
	}
	c.Preferences.DefaultModel = name
	return nil
}

// PickModel resolves an override name, then the default, then the first model.
func (c *Config) PickModel(override string) (ModelDefinition, error) {
	name := override
	if name == "" {
		name = c.Preferences.DefaultModel
	}
	if name == "" && len(c.Models) > 0 {
		return c.Models[0], nil
	}
	if model, ok := c.FindModelByName(name); ok {
		return model, nil
	}
	return ModelDefinition{}, fmt.Errorf("model %s not configured", name)
}

// ProviderTimeout returns the provider call bound, or zero for none.
func (c *Config) ProviderTimeout() time.Duration {
	if c.Preferences.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Preferences.TimeoutSeconds) * time.Second
}

// GetHistoryBackend returns the history medium, defaulting to the JSON file.
func (c *Config) GetHistoryBackend() string {
	if c.History.Backend == "" {
		return HistoryBackendFile
	}
	return strings.ToLower(c.History.Backend)
}

// GetServerAddr returns the listen address for the HTTP server
func (c *Config) GetServerAddr() string {
	const defaultAddr = ":3000"

	if c.Server.Addr == "" {
		return defaultAddr
	}
	return c.Server.Addr
}

// GetMetricsPath returns the Prometheus scrape path
func (c *Config) GetMetricsPath() string {
	if c.Server.MetricsPath == "" {
		return "/metrics"
	}
	return c.Server.MetricsPath
}

// ValidateConsistency checks the internal consistency of the configuration
func (c *Config) ValidateConsistency() error {
	if c.Preferences.DefaultModel != "" && len(c.Models) == 0 {
		return fmt.Errorf("default model is set but no models are configured")
	}

	if c.Preferences.DefaultModel != "" && !c.HasModel(c.Preferences.DefaultModel) {
		return fmt.Errorf("default model %s does not exist in models list", c.Preferences.DefaultModel)
	}

	return nil
}

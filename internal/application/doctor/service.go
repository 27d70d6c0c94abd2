package doctor

import (
	"context"
	"fmt"
	"os"

	appconfig "github.com/doeshing/coach-go/internal/application/config"
	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/ports"
)

// keyFallbacks are the variables each provider reads when auth_env_var is unset.
var keyFallbacks = map[string]string{
	string(domain.ProviderKindGemini):    "GEMINI_API_KEY",
	string(domain.ProviderKindOpenAI):    "OPENAI_API_KEY",
	string(domain.ProviderKindAnthropic): "ANTHROPIC_API_KEY",
}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	ProviderFactory ports.ProviderFactory
	History         ports.HistoryRepository
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))

	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config validation", err.Error()))
	} else {
		checks = append(checks, ok("Config validation", fmt.Sprintf("%d model(s) configured", len(cfg.Models))))
	}

	checks = append(checks, s.providerCheck(cfg))

	if s.History != nil {
		if entries, err := s.History.Load(ctx); err != nil {
			checks = append(checks, fail("History", fmt.Sprintf("%s: %v", s.History.Path(), err)))
		} else {
			checks = append(checks, ok("History", fmt.Sprintf("%d entries in %s", len(entries), s.History.Path())))
		}
	} else {
		checks = append(checks, warn("History", "history store not initialized"))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) providerCheck(cfg domain.Config) domain.HealthCheck {
	model, err := cfg.PickModel("")
	if err != nil {
		return fail("Provider", err.Error())
	}
	if s.ProviderFactory == nil {
		return warn("Provider", "provider factory not initialized")
	}
	provider, err := s.ProviderFactory.ForModel(model)
	if err != nil {
		return fail("Provider", err.Error())
	}

	fallback := keyFallbacks[provider.Name()]
	if fallback == "" && model.AuthEnvVar == "" {
		return ok("Provider", fmt.Sprintf("%s (%s), no API key required", provider.Name(), model.ModelID))
	}
	if envMissing(model.AuthEnvVar, fallback) {
		name := model.AuthEnvVar
		if name == "" {
			name = fallback
		}
		return fail("Provider", fmt.Sprintf("%s (%s): %s is not set", provider.Name(), model.ModelID, name))
	}
	return ok("Provider", fmt.Sprintf("%s (%s), API key detected", provider.Name(), model.ModelID))
}

func envMissing(primary, fallback string) bool {
	if primary != "" && os.Getenv(primary) != "" {
		return false
	}
	if fallback != "" && os.Getenv(fallback) != "" {
		return false
	}
	return true
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}

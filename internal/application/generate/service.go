// Package generate runs one request through prompt building and a single
// provider call, and classifies the outcome for display.
package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/pkg/metrics"
	"github.com/doeshing/coach-go/internal/ports"
)

// Service orchestrates the generation lifecycle end-to-end.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	ProviderFactory ports.ProviderFactory
	Builder         ports.PromptBuilder
	Logger          ports.Logger

	// ModelOverride selects a configured model by name instead of the default.
	ModelOverride string
}

// Generate never returns an error; failures are folded into the result.
func (s *Service) Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult {
	if ctx == nil {
		ctx = context.Background()
	}
	kind := req.Kind()
	result := s.generate(ctx, req)

	outcome := metrics.OutcomeOK
	if !result.OK() {
		outcome = string(result.Failure.Kind)
		s.logFailure(kind, result.Failure)
	}
	metrics.GenerationTotal.WithLabelValues(string(kind), outcome).Inc()
	return result
}

func (s *Service) generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult {
	if s.ConfigProvider == nil || s.ProviderFactory == nil || s.Builder == nil || s.Logger == nil {
		return domain.Failed(errors.New("generate.Service dependencies not satisfied"))
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.Failed(fmt.Errorf("load config: %w", err))
	}

	modelDef, err := cfg.PickModel(s.ModelOverride)
	if err != nil {
		return domain.Failed(err)
	}

	promptText, err := s.Builder.Build(req)
	if err != nil {
		return domain.Failed(fmt.Errorf("build prompt: %w", err))
	}

	provider, err := s.ProviderFactory.ForModel(modelDef)
	if err != nil {
		return domain.Failed(fmt.Errorf("provider init: %w", err))
	}

	if timeout := cfg.ProviderTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	s.Logger.Info("calling provider", map[string]interface{}{
		"provider": provider.Name(),
		"model":    modelDef.ModelID,
		"kind":     string(req.Kind()),
	})

	started := time.Now()
	resp, err := provider.Generate(ctx, ports.ProviderRequest{Prompt: promptText, Model: modelDef})
	metrics.ProviderCallDuration.WithLabelValues(provider.Name(), modelDef.ModelID).Observe(time.Since(started).Seconds())

	if err != nil {
		if retryAfter, limited := domain.AsRateLimit(err); limited {
			metrics.ProviderCallTotal.WithLabelValues(provider.Name(), modelDef.ModelID, string(domain.FailureRateLimited)).Inc()
			return domain.RateLimited(retryAfter, err)
		}
		metrics.ProviderCallTotal.WithLabelValues(provider.Name(), modelDef.ModelID, "error").Inc()
		return domain.Failed(fmt.Errorf("provider generate: %w", err))
	}
	metrics.ProviderCallTotal.WithLabelValues(provider.Name(), modelDef.ModelID, metrics.OutcomeOK).Inc()

	return domain.Succeeded(resp.Text)
}

func (s *Service) logFailure(kind domain.RequestKind, failure *domain.GenerationFailure) {
	if s.Logger == nil {
		return
	}
	fields := map[string]interface{}{"kind": string(kind), "failure": string(failure.Kind)}
	if failure.Kind == domain.FailureRateLimited {
		fields["retry_after"] = failure.RetryAfter.String()
		s.Logger.Warn("provider rate limited", fields)
		return
	}
	s.Logger.Error("generation failed", failure.Err, fields)
}

var _ ports.Generator = (*Service)(nil)

package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/ports"
)

// maxErrorBody caps how much of a failed response is read for diagnostics.
const maxErrorBody = 64 << 10

type httpProvider struct {
	name       string
	model      domain.ModelDefinition
	httpClient *http.Client
	adapter    providerAdapter
}

// providerAdapter plugs a vendor wire format into httpProvider. parseError
// extracts the vendor status string and message from an error body.
type providerAdapter struct {
	endpoint      func(domain.ModelDefinition) string
	buildRequest  func(domain.ModelDefinition, string) ([]byte, error)
	parseResponse func([]byte) (string, error)
	parseError    func([]byte) (string, string)
	setHeaders    func(*http.Request, domain.ModelDefinition) error
}

func newHTTPProvider(name string, model domain.ModelDefinition, client *http.Client, adapter providerAdapter) ports.Provider {
	return &httpProvider{
		name:       name,
		model:      model,
		httpClient: client,
		adapter:    adapter,
	}
}

func (p *httpProvider) Name() string {
	return p.name
}

func (p *httpProvider) Model() domain.ModelDefinition {
	return p.model
}

func (p *httpProvider) Generate(ctx context.Context, req ports.ProviderRequest) (ports.ProviderResponse, error) {
	model := p.model
	if req.Model.ModelID != "" {
		model = req.Model
	}

	requestBody, err := p.adapter.buildRequest(model, req.Prompt)
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.adapter.endpoint(model), bytes.NewReader(requestBody))
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	httpReq.Header.Set("content-type", "application/json")
	if err := p.adapter.setHeaders(httpReq, model); err != nil {
		return ports.ProviderResponse{}, err
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return ports.ProviderResponse{}, fmt.Errorf("%s: %w", p.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return ports.ProviderResponse{}, p.classifyError(resp, body)
	}

	var responseBody bytes.Buffer
	if _, err := responseBody.ReadFrom(resp.Body); err != nil {
		return ports.ProviderResponse{}, err
	}

	content, err := p.adapter.parseResponse(responseBody.Bytes())
	if err != nil {
		return ports.ProviderResponse{}, fmt.Errorf("%s: %w", p.name, err)
	}

	return ports.ProviderResponse{Text: content}, nil
}

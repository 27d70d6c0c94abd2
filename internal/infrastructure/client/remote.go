// Package client calls a running `coach serve` instance.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/ports"
)

// GeneratePath is the endpoint path on the server.
const GeneratePath = "/api/generate"

// RemoteGenerator is a ports.Generator backed by the HTTP endpoint.
type RemoteGenerator struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a RemoteGenerator.
type Option func(*RemoteGenerator)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *RemoteGenerator) {
		r.httpClient = c
	}
}

// NewRemoteGenerator targets the server at baseURL, e.g. http://localhost:3000.
func NewRemoteGenerator(baseURL string, opts ...Option) *RemoteGenerator {
	r := &RemoteGenerator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type responseBody struct {
	Output string `json:"output"`
	Error  string `json:"error"`
}

// Generate posts req and maps the reply onto a result. Transport failures
// become the network error; the server's error text is shown verbatim.
func (r *RemoteGenerator) Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult {
	payload, err := json.Marshal(req)
	if err != nil {
		return domain.Failed(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+GeneratePath, bytes.NewReader(payload))
	if err != nil {
		return domain.Unreachable(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return domain.Unreachable(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Unreachable(err)
	}

	var body responseBody
	if err := json.Unmarshal(data, &body); err != nil {
		return domain.Failed(fmt.Errorf("decode response (HTTP %d): %w", resp.StatusCode, err))
	}

	if resp.StatusCode == http.StatusOK && body.Output != "" {
		return domain.Succeeded(body.Output)
	}

	kind := domain.FailureGeneric
	if resp.StatusCode == http.StatusTooManyRequests {
		kind = domain.FailureRateLimited
	}
	result := domain.FailedWithMessage(kind, body.Error)
	result.Failure.RetryAfter = retryAfter(resp.Header.Get("Retry-After"))
	return result
}

func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

var _ ports.Generator = (*RemoteGenerator)(nil)

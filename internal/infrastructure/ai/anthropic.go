package ai

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/doeshing/coach-go/internal/domain"
)

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func anthropicAdapter() providerAdapter {
	return providerAdapter{
		endpoint:      plainEndpoint,
		buildRequest:  buildAnthropicRequest,
		parseResponse: parseAnthropicResponse,
		parseError:    parseAnthropicError,
		setHeaders:    setAnthropicHeaders,
	}
}

func buildAnthropicRequest(model domain.ModelDefinition, prompt string) ([]byte, error) {
	return json.Marshal(anthropicRequest{
		Model:     valueOrDefault(model.ModelID, "claude-3-5-sonnet-20240620"),
		MaxTokens: valueOrDefaultInt(model.MaxTokens, 2048),
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
}

func parseAnthropicResponse(body []byte) (string, error) {
	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode anthropic response: %w", err)
	}

	var out strings.Builder
	for _, block := range response.Content {
		if block.Type == "" || block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	return out.String(), nil
}

func parseAnthropicError(body []byte) (string, string) {
	var e anthropicError
	if err := json.Unmarshal(body, &e); err != nil {
		return "", ""
	}
	return e.Error.Type, e.Error.Message
}

func setAnthropicHeaders(req *http.Request, model domain.ModelDefinition) error {
	apiKey := resolveAuth(model.AuthEnvVar, "ANTHROPIC_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s or ANTHROPIC_API_KEY", model.AuthEnvVar)
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	return nil
}

package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/doeshing/coach-go/internal/domain"
)

const (
	geminiDefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	geminiRetryInfoType   = "type.googleapis.com/google.rpc.RetryInfo"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Type       string `json:"@type"`
			RetryDelay string `json:"retryDelay"`
		} `json:"details"`
	} `json:"error"`
}

func geminiAdapter() providerAdapter {
	return providerAdapter{
		endpoint:      geminiEndpoint,
		buildRequest:  buildGeminiRequest,
		parseResponse: parseGeminiResponse,
		parseError:    parseGeminiError,
		setHeaders:    setGeminiHeaders,
	}
}

// geminiEndpoint expands the configured API base into the generateContent URL.
func geminiEndpoint(model domain.ModelDefinition) string {
	base := strings.TrimRight(valueOrDefault(model.Endpoint, geminiDefaultEndpoint), "/")
	if strings.Contains(base, ":generateContent") {
		return base
	}
	return fmt.Sprintf("%s/models/%s:generateContent", base, valueOrDefault(model.ModelID, domain.DefaultModelID))
}

func buildGeminiRequest(model domain.ModelDefinition, prompt string) ([]byte, error) {
	request := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}
	if model.MaxTokens > 0 {
		request.GenerationConfig = &geminiGenerationConfig{MaxOutputTokens: model.MaxTokens}
	}
	return json.Marshal(request)
}

func parseGeminiResponse(body []byte) (string, error) {
	var response geminiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if response.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked: %s", response.PromptFeedback.BlockReason)
	}
	if len(response.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	var out strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		out.WriteString(part.Text)
	}
	return out.String(), nil
}

func parseGeminiError(body []byte) (string, string) {
	var e geminiError
	if err := json.Unmarshal(body, &e); err != nil {
		return "", ""
	}
	return e.Error.Status, e.Error.Message
}

// geminiRetryDelay reads google.rpc.RetryInfo from an error body.
func geminiRetryDelay(body []byte) time.Duration {
	var e geminiError
	if err := json.Unmarshal(body, &e); err != nil {
		return 0
	}
	for _, detail := range e.Error.Details {
		if detail.Type != geminiRetryInfoType || detail.RetryDelay == "" {
			continue
		}
		if d, err := time.ParseDuration(detail.RetryDelay); err == nil && d > 0 {
			return d.Round(time.Second)
		}
	}
	return 0
}

func setGeminiHeaders(req *http.Request, model domain.ModelDefinition) error {
	apiKey := resolveAuth(model.AuthEnvVar, "GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s or GEMINI_API_KEY", valueOrDefault(model.AuthEnvVar, "GEMINI_API_KEY"))
	}
	req.Header.Set("x-goog-api-key", apiKey)
	return nil
}

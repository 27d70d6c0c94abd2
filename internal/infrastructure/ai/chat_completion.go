package ai

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/doeshing/coach-go/internal/domain"
)

// OpenAI-compatible chat completions, spoken by OpenAI and Ollama.

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
	Stream    bool          `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c chatCompletionResponse) FirstMessage() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(c.Choices[0].Message.Content)
}

type chatCompletionError struct {
	Error struct {
		Message string      `json:"message"`
		Type    string      `json:"type"`
		Code    interface{} `json:"code"`
	} `json:"error"`
}

func openaiAdapter() providerAdapter {
	return providerAdapter{
		endpoint:      plainEndpoint,
		buildRequest:  buildChatCompletionRequest,
		parseResponse: parseChatCompletionResponse,
		parseError:    parseChatCompletionError,
		setHeaders:    setOpenAIHeaders,
	}
}

func ollamaAdapter() providerAdapter {
	return providerAdapter{
		endpoint:      plainEndpoint,
		buildRequest:  buildChatCompletionRequest,
		parseResponse: parseChatCompletionResponse,
		parseError:    parseChatCompletionError,
		setHeaders:    setOllamaHeaders,
	}
}

func plainEndpoint(model domain.ModelDefinition) string {
	return model.Endpoint
}

func buildChatCompletionRequest(model domain.ModelDefinition, prompt string) ([]byte, error) {
	return json.Marshal(chatCompletionRequest{
		Model:     model.ModelID,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: model.MaxTokens,
	})
}

func parseChatCompletionResponse(body []byte) (string, error) {
	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode chat completion: %w", err)
	}
	return response.FirstMessage(), nil
}

func parseChatCompletionError(body []byte) (string, string) {
	var e chatCompletionError
	if err := json.Unmarshal(body, &e); err != nil {
		return "", ""
	}
	status := e.Error.Type
	if code, ok := e.Error.Code.(string); ok && code != "" {
		status = code
	}
	return status, e.Error.Message
}

func setOpenAIHeaders(req *http.Request, model domain.ModelDefinition) error {
	apiKey := resolveAuth(model.AuthEnvVar, "OPENAI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s or OPENAI_API_KEY", model.AuthEnvVar)
	}
	req.Header.Set("authorization", "Bearer "+apiKey)

	if org := resolveAuth(model.OrgEnvVar, "OPENAI_ORG_ID"); org != "" {
		req.Header.Set("OpenAI-Organization", org)
	}
	return nil
}

func setOllamaHeaders(req *http.Request, model domain.ModelDefinition) error {
	if apiKey := resolveAuth(model.AuthEnvVar, ""); apiKey != "" {
		req.Header.Set("authorization", "Bearer "+apiKey)
	}
	return nil
}

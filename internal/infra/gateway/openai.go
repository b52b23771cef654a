package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"curtaincall/internal/pkg/config"
	"curtaincall/internal/pkg/errs"
)

// OpenAIGateway classifies chat messages through the chat-completions API.
type OpenAIGateway struct {
	cfg    config.OpenAIConfig
	client *http.Client
}

func NewOpenAIGateway(cfg config.OpenAIConfig) *OpenAIGateway {
	return &OpenAIGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one system+user exchange and returns the assistant text.
func (g *OpenAIGateway) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	payload := chatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build completion request")
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "completion request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Wrap(err, "failed to read completion response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errs.New("completion rejected: " + string(respBody))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", errs.Wrap(err, "failed to parse completion response")
	}
	if len(result.Choices) == 0 {
		return "", errs.New("completion returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

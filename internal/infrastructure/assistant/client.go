package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

const (
	// Maximum response body size for the completion API (256KB)
	maxResponseSize = 256 << 10
	// Hard cap on prompt material taken from the ticket body
	maxDescriptionChars = 4000

	systemPrompt = "You are a support agent drafting a first reply to a customer ticket. " +
		"Be concrete and polite, suggest next steps, and keep it under 150 words."
)

// HTTPClient generates reply drafts through an OpenAI-compatible chat
// completions endpoint.
type HTTPClient struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPClient(cfg config.AssistantConfig, log logger.Interface) *HTTPClient {
	return &HTTPClient{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		// Per-call deadlines come from the caller's context.
		httpClient: &http.Client{},
		logger:     log.With("component", "assistant.client"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *HTTPClient) Complete(ctx context.Context, subject, description string) (string, error) {
	if len(description) > maxDescriptionChars {
		description = description[:maxDescriptionChars]
	}

	payload := completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Subject: %s\n\n%s", subject, description)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data completionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(data.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}

	suggestion := strings.TrimSpace(data.Choices[0].Message.Content)
	if suggestion == "" {
		return "", fmt.Errorf("completion response is empty")
	}

	c.logger.Debugw("generated reply suggestion",
		"subject", subject,
		"chars", len(suggestion))

	return suggestion, nil
}

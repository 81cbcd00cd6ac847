package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"career-compass/internal/config"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Temperature is fixed: recommendation calls always use the same moderate
// sampling setting rather than exposing it per request.
const temperature = 0.7

// Client is the outbound chat-completion dependency of the recommendation
// usecase, injected so tests can substitute a fake. No retry, caching, or
// circuit breaking: every call is one fresh upstream request.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type OpenAIClient struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    *http.Client
	logger    *log.Logger
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

func NewOpenAIClient(cfg config.OpenAIConfig, logger *log.Logger) *OpenAIClient {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &OpenAIClient{
		apiKey:    cfg.APIKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		model:     cfg.Model,
		maxTokens: maxTokens,
		client:    &http.Client{Timeout: 60 * time.Second},
		logger:    logger,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("nil completion client")
	}
	if c.apiKey == "" {
		return "", errors.New("completion API key not configured")
	}

	body := chatCompletionRequest{
		Model: c.model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   c.maxTokens,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Completion] upstream error endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return "", fmt.Errorf("completion API returned status %d: %s", resp.StatusCode, bodyStr)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("completion API returned no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

var _ Client = (*OpenAIClient)(nil)

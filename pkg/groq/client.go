package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"skillsync-backend/config"
)

const (
	// Persona for the system message; the user message carries the built prompt.
	SystemPrompt = "You are a career advisor specializing in software development and technology careers. " +
		"Provide specific, actionable career path suggestions based on the user's skills and experience."

	defaultTemperature = 0.7
)

// Client talks to a Groq (OpenAI-compatible) chat-completions endpoint.
// It transports requests and hands back raw bodies; interpreting the content
// is the caller's job.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiURL:    cfg.GroqAPIURL,
		apiKey:    cfg.GroqAPIKey,
		model:     cfg.GroqModel,
		maxTokens: cfg.AIMaxTokens,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.AITimeoutSeconds) * time.Second,
		},
	}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatCompletionResponse is the envelope of a successful completion. Only the
// content field is of interest downstream.
type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion issues a single POST with a system and user message. It
// returns the raw response body and status code; non-2xx statuses are
// reported as-is, never retried. A non-nil error means no response was
// obtained at all (network failure, timeout).
func (c *Client) ChatCompletion(ctx context.Context, systemPrompt, userPrompt string) ([]byte, int, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: defaultTemperature,
		MaxTokens:   c.maxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read chat response: %w", err)
	}

	return body, resp.StatusCode, nil
}

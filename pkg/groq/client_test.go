package groq_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillsync-backend/config"
	"skillsync-backend/pkg/groq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *groq.Client {
	return groq.NewClient(&config.Config{
		GroqAPIURL:       url,
		GroqAPIKey:       "test-key",
		GroqModel:        "llama3-8b-8192",
		AITimeoutSeconds: 5,
		AIMaxTokens:      1000,
	})
}

func TestChatCompletionRequestShape(t *testing.T) {
	var captured struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
	}
	var authHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[]"}}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	body, status, err := client.ChatCompletion(context.Background(), "system persona", "user prompt")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "llama3-8b-8192", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "system persona", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "user prompt", captured.Messages[1].Content)
	assert.Equal(t, 1000, captured.MaxTokens)

	var envelope groq.ChatCompletionResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Len(t, envelope.Choices, 1)
	assert.Equal(t, "[]", envelope.Choices[0].Message.Content)
}

func TestChatCompletionNon2xxPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	body, status, err := client.ChatCompletion(context.Background(), "s", "u")

	// Non-2xx is data for the caller, not a transport error
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Contains(t, string(body), "rate limited")
}

func TestChatCompletionTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed up front to force a connection error

	client := newTestClient(srv.URL)
	_, _, err := client.ChatCompletion(context.Background(), "s", "u")
	assert.Error(t, err)
}

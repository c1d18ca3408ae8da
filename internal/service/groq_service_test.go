package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGroqTestServer(t *testing.T, status int, body string, inspect func(r *http.Request, payload map[string]any)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(raw, &payload))
		if inspect != nil {
			inspect(r, payload)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGroq(baseURL, apiKey string) *GroqService {
	return NewGroqService(&config.GroqConfig{APIKey: apiKey, BaseURL: baseURL}, zap.NewNop())
}

func TestGroqComplete_Success(t *testing.T) {
	srv := newGroqTestServer(t, http.StatusOK,
		`{"choices":[{"message":{"role":"assistant","content":"{\"rank\": 75}"}}]}`,
		func(r *http.Request, payload map[string]any) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

			assert.Equal(t, "match-model", payload["model"])
			assert.EqualValues(t, 0, payload["temperature"])
			assert.Equal(t, map[string]any{"type": "json_object"}, payload["response_format"])
			assert.NotContains(t, payload, "max_tokens")

			messages := payload["messages"].([]any)
			require.Len(t, messages, 2)
			assert.Equal(t, "system", messages[0].(map[string]any)["role"])
			assert.Equal(t, MatchSystemPrompt, messages[0].(map[string]any)["content"])
			assert.Equal(t, "user", messages[1].(map[string]any)["role"])
			assert.Equal(t, "the prompt", messages[1].(map[string]any)["content"])
		})

	resp, err := newTestGroq(srv.URL, "secret").Complete(context.Background(), CompletionRequest{
		Model:    "match-model",
		System:   MatchSystemPrompt,
		Prompt:   "the prompt",
		JSONMode: true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"rank": 75}`, resp.Content)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGroqComplete_ExtractionShape(t *testing.T) {
	srv := newGroqTestServer(t, http.StatusOK,
		`{"choices":[{"message":{"content":"{}"}}]}`,
		func(r *http.Request, payload map[string]any) {
			assert.Equal(t, 0.2, payload["temperature"])
			assert.EqualValues(t, 2048, payload["max_tokens"])
			assert.NotContains(t, payload, "response_format")
			assert.Len(t, payload["messages"], 1)
		})

	_, err := newTestGroq(srv.URL, "secret").Complete(context.Background(), CompletionRequest{
		Model:       "extract-model",
		Prompt:      "extract",
		Temperature: 0.2,
		MaxTokens:   2048,
	})
	require.NoError(t, err)
}

func TestGroqComplete_ErrorStatus(t *testing.T) {
	srv := newGroqTestServer(t, http.StatusTooManyRequests, `{"error":{"message":"rate limited"}}`, nil)

	_, err := newTestGroq(srv.URL, "secret").Complete(context.Background(), CompletionRequest{Prompt: "p"})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "Groq", upErr.Provider)
	assert.Equal(t, http.StatusTooManyRequests, upErr.StatusCode)
	assert.Equal(t, `{"error":{"message":"rate limited"}}`, upErr.Body)
	assert.True(t, upErr.HasUpstreamStatus())
}

func TestGroqComplete_MissingContent(t *testing.T) {
	srv := newGroqTestServer(t, http.StatusOK, `{"choices":[]}`, nil)

	_, err := newTestGroq(srv.URL, "secret").Complete(context.Background(), CompletionRequest{Prompt: "p"})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, `{"choices":[]}`, upErr.Body)
	assert.False(t, upErr.HasUpstreamStatus())
}

func TestGroqComplete_NoKeyNoAuthHeader(t *testing.T) {
	srv := newGroqTestServer(t, http.StatusUnauthorized, `{"error":"invalid api key"}`,
		func(r *http.Request, _ map[string]any) {
			assert.Empty(t, r.Header.Get("Authorization"))
		})

	_, err := newTestGroq(srv.URL, "").Complete(context.Background(), CompletionRequest{Prompt: "p"})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusUnauthorized, upErr.StatusCode)
}

func TestGroqComplete_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestGroq(url, "secret").Complete(context.Background(), CompletionRequest{Prompt: "p"})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Zero(t, upErr.StatusCode)
	assert.False(t, upErr.HasUpstreamStatus())
}

func TestUpstreamError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &UpstreamError{Provider: "Groq", StatusCode: 502, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Groq: status 502: boom", err.Error())
}

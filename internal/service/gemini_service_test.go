package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

func TestGeminiComplete_WithoutKey(t *testing.T) {
	s, err := NewGeminiService(context.Background(), &config.GeminiConfig{Model: "gemini-2.5-flash"}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, s.Client)
	assert.Equal(t, "Gemini", s.Name())

	_, err = s.Complete(context.Background(), CompletionRequest{Prompt: "p"})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, 401, upErr.StatusCode)
}

func TestToUpstreamError(t *testing.T) {
	apiErr := genai.APIError{Code: 429, Message: "quota exceeded", Status: "RESOURCE_EXHAUSTED"}

	got := toUpstreamError("Gemini", fmt.Errorf("generate: %w", apiErr))
	assert.Equal(t, 429, got.StatusCode)
	assert.Equal(t, "quota exceeded", got.Body)

	got = toUpstreamError("Gemini", errors.New("dial tcp: refused"))
	assert.Zero(t, got.StatusCode)
	assert.False(t, got.HasUpstreamStatus())
}

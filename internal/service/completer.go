package service

import (
	"context"
	"fmt"
)

// CompleterInterface is a single-shot chat completion against an external
// LLM. Implementations make exactly one attempt per call.
type CompleterInterface interface {
	// Name is the human-facing provider name used in error messages.
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

type CompletionRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature float64
	// MaxTokens caps the answer length; zero leaves it to the provider.
	MaxTokens int
	// JSONMode asks the provider for a JSON object response.
	JSONMode bool
}

type Completion struct {
	Content    string
	StatusCode int
	Raw        string
}

// UpstreamError is every failure of a completion call. StatusCode is zero
// when no HTTP response was received.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HasUpstreamStatus reports whether the provider answered with an error status
// worth relaying to the caller as-is.
func (e *UpstreamError) HasUpstreamStatus() bool {
	return e.StatusCode >= 400
}

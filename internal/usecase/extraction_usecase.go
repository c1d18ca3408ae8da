package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/fadilmartias/resume-matcher/internal/logger"
	"github.com/fadilmartias/resume-matcher/internal/service"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"go.uber.org/zap"
)

var ErrMissingCredential = errors.New("llm api key is not configured")

// ExtractionParseError means the model answered but not with a JSON object.
type ExtractionParseError struct {
	Details string
	Raw     string
}

func (e *ExtractionParseError) Error() string {
	return "failed to parse extracted data: " + e.Details
}

type ExtractionUsecase struct {
	completer service.CompleterInterface
	cfg       *config.LLMConfig
	log       *zap.Logger
}

func NewExtractionUsecase(completer service.CompleterInterface, cfg *config.LLMConfig, log *zap.Logger) *ExtractionUsecase {
	return &ExtractionUsecase{completer: completer, cfg: cfg, log: log}
}

func (uc *ExtractionUsecase) CredentialConfigured() bool {
	return strings.TrimSpace(uc.cfg.APIKey) != ""
}

// MissingCredentialMessage names the active provider, e.g.
// "GROQ API key not found in environment variables".
func (uc *ExtractionUsecase) MissingCredentialMessage() string {
	return strings.ToUpper(uc.cfg.Provider) + " API key not found in environment variables"
}

// Extract asks the model for the structured job fields and returns the
// answer object unchanged once it is known to be a JSON object.
func (uc *ExtractionUsecase) Extract(ctx context.Context, description string) (json.RawMessage, error) {
	if !uc.CredentialConfigured() {
		return nil, ErrMissingCredential
	}

	if uc.cfg.ExtractTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.ExtractTimeout)
		defer cancel()
	}

	resp, err := uc.completer.Complete(ctx, service.CompletionRequest{
		Model:       uc.cfg.ExtractModel,
		Prompt:      service.BuildExtractionPrompt(description),
		Temperature: 0.2,
		MaxTokens:   2048,
	})
	if err != nil {
		return nil, err
	}

	clean := util.CleanJSONFence(resp.Content)
	var data map[string]any
	if err := json.Unmarshal([]byte(clean), &data); err != nil {
		uc.log.Warn("extraction answer is not valid JSON", zap.String("raw", logger.Truncate(clean, 300)))
		return nil, &ExtractionParseError{Details: err.Error(), Raw: clean}
	}
	if data == nil {
		return nil, &ExtractionParseError{Details: "extracted data is not a JSON object", Raw: clean}
	}

	return json.RawMessage(clean), nil
}

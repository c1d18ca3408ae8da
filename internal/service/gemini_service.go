package service

import (
	"context"
	"errors"
	"strings"

	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/fadilmartias/resume-matcher/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiService is the alternate completer selected with LLM_PROVIDER=gemini.
type GeminiService struct {
	Client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGeminiService builds the client eagerly when a key is configured. With
// no key every call fails with a 401-shaped UpstreamError, the same way an
// unauthenticated Groq call would.
func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig, log *zap.Logger) (*GeminiService, error) {
	s := &GeminiService{model: cfg.Model, log: log}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return s, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, err
	}
	s.Client = client
	return s, nil
}

func (s *GeminiService) Name() string {
	return "Gemini"
}

func (s *GeminiService) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if s.Client == nil {
		return nil, &UpstreamError{
			Provider:   s.Name(),
			StatusCode: 401,
			Body:       "gemini api key is not configured",
			Err:        errors.New("missing api key"),
		}
	}

	model := req.Model
	if model == "" {
		model = s.model
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONMode {
		genConfig.ResponseMIMEType = "application/json"
	}

	s.log.Debug("gemini request",
		zap.String("model", model),
		zap.String("prompt", logger.Truncate(req.Prompt, 300)),
	)

	result, err := s.Client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return nil, toUpstreamError(s.Name(), err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return nil, &UpstreamError{
			Provider:   s.Name(),
			StatusCode: 200,
			Err:        errors.New("response has no text content"),
		}
	}

	return &Completion{Content: text, StatusCode: 200}, nil
}

func toUpstreamError(provider string, err error) *UpstreamError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{Provider: provider, StatusCode: apiErr.Code, Body: apiErr.Message, Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return &UpstreamError{Provider: provider, StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message, Err: err}
	}
	return &UpstreamError{Provider: provider, Err: err}
}

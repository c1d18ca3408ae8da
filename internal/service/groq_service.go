package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/fadilmartias/resume-matcher/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GroqService talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqService struct {
	client *resty.Client
	apiKey string
	log    *zap.Logger
}

func NewGroqService(cfg *config.GroqConfig, log *zap.Logger) *GroqService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultGroqBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")

	return &GroqService{
		client: client,
		apiKey: cfg.APIKey,
		log:    log,
	}
}

func (s *GroqService) Name() string {
	return "Groq"
}

func (s *GroqService) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	payload := map[string]any{
		"model":       req.Model,
		"messages":    messages,
		"temperature": req.Temperature,
	}
	if req.JSONMode {
		payload["response_format"] = map[string]string{"type": "json_object"}
	}
	if req.MaxTokens > 0 {
		payload["max_tokens"] = req.MaxTokens
	}

	s.log.Debug("groq request",
		zap.String("model", req.Model),
		zap.String("prompt", logger.Truncate(req.Prompt, 300)),
	)

	r := s.client.R().
		SetContext(ctx).
		SetBody(payload)
	if s.apiKey != "" {
		r.SetAuthToken(s.apiKey)
	}

	resp, err := r.Post("/chat/completions")
	if err != nil {
		return nil, &UpstreamError{Provider: s.Name(), Err: fmt.Errorf("request failed: %w", err)}
	}

	body := resp.String()
	s.log.Debug("groq response",
		zap.Int("status", resp.StatusCode()),
		zap.String("body", logger.Truncate(body, 500)),
	)

	if !resp.IsSuccess() {
		return nil, &UpstreamError{
			Provider:   s.Name(),
			StatusCode: resp.StatusCode(),
			Body:       body,
			Err:        errors.New("unexpected status"),
		}
	}

	content := gjson.Get(body, "choices.0.message.content")
	if content.Type != gjson.String {
		return nil, &UpstreamError{
			Provider:   s.Name(),
			StatusCode: resp.StatusCode(),
			Body:       body,
			Err:        errors.New("response has no message content"),
		}
	}

	return &Completion{
		Content:    content.String(),
		StatusCode: resp.StatusCode(),
		Raw:        body,
	}, nil
}

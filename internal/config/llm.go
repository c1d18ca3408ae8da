package config

import (
	"strings"
	"sync"
	"time"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// LLMConfig is the provider-neutral view handed to the usecases. Models and
// the credential are resolved from the active provider's own config.
type LLMConfig struct {
	Provider           string
	APIKey             string
	MatchModel         string
	ExtractModel       string
	ExtractTimeout     time.Duration
	DegradeMatchErrors bool
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		cfg := &LLMConfig{
			Provider:           strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq)),
			ExtractTimeout:     getEnvAsDuration("EXTRACT_TIMEOUT", 30*time.Second),
			DegradeMatchErrors: getEnvAsBool("MATCH_DEGRADE_UPSTREAM_ERRORS", true),
		}
		switch cfg.Provider {
		case ProviderGemini:
			gemini := LoadGeminiConfig()
			cfg.APIKey = gemini.APIKey
			cfg.MatchModel = gemini.Model
			cfg.ExtractModel = gemini.Model
		default:
			groq := LoadGroqConfig()
			cfg.Provider = ProviderGroq
			cfg.APIKey = groq.APIKey
			cfg.MatchModel = groq.MatchModel
			cfg.ExtractModel = groq.ExtractModel
		}
		llmConfig = cfg
	})
	return llmConfig
}

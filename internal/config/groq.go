package config

import (
	"os"
	"sync"
)

const DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

type GroqConfig struct {
	APIKey       string
	BaseURL      string
	MatchModel   string
	ExtractModel string
}

var (
	groqConfig *GroqConfig
	groqOnce   sync.Once
)

func LoadGroqConfig() *GroqConfig {
	groqOnce.Do(func() {
		groqConfig = &GroqConfig{
			APIKey:       os.Getenv("GROQ_API_KEY"),
			BaseURL:      getEnv("GROQ_BASE_URL", DefaultGroqBaseURL),
			MatchModel:   getEnv("GROQ_MATCH_MODEL", "deepseek-r1-distill-llama-70b"),
			ExtractModel: getEnv("GROQ_EXTRACT_MODEL", "llama3-70b-8192"),
		}
	})
	return groqConfig
}

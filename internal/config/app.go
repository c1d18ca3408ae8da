package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name          string
	Env           string
	Port          string
	BaseURL       string
	MaxUploadSize int64
	RateLimit     int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		appConfig = &AppConfig{
			Name:          getEnv("APP_NAME", "resume-matcher"),
			Env:           env,
			Port:          getEnv("APP_PORT", ":8000"),
			BaseURL:       os.Getenv("APP_URL"),
			MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 10*1024*1024),
			RateLimit:     getEnvAsInt("RATE_LIMIT_PER_MINUTE", 50),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

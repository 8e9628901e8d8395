package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY not set")

type Config struct {
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	Port        string
	DatabaseURL string

	FollowUpDelay      time.Duration
	FollowUpWebhookURL string

	LogLevel string
	Env      string
}

// Load reads .env (if any) and the process environment.
// The completion credential is the only required value.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		OpenAIKey:          strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:        getenv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		Port:               getenv("PORT", "8080"),
		DatabaseURL:        getenv("DATABASE_URL", "assistbot.db"),
		FollowUpDelay:      300 * time.Second,
		FollowUpWebhookURL: strings.TrimSpace(os.Getenv("FOLLOW_UP_WEBHOOK_URL")),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		Env:                getenv("APP_ENV", "development"),
	}

	if cfg.OpenAIKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	if raw := os.Getenv("FOLLOW_UP_DELAY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid FOLLOW_UP_DELAY %q", raw)
		}
		cfg.FollowUpDelay = d
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from the environment
// and an optional local .env file.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	// ExaAPIKey comes from EXA_API_KEY. It has no default and may be empty
	// after Load; client construction is where an absent credential fails.
	ExaAPIKey  string `mapstructure:"exa_api_key"`
	ExaBaseURL string `mapstructure:"exa_base_url"`

	Query string `mapstructure:"query"`

	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables, optionally seeded
// from a local .env file. Variables already present in the environment are
// never overridden, so repeated calls are idempotent.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("app_name", "exa-ask")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("exa_api_key", "")
	v.SetDefault("exa_base_url", "https://api.exa.ai")
	v.SetDefault("query", "What's the TCP structure?")
	v.SetDefault("request_timeout_seconds", 30)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	return &cfg, nil
}

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`

	HFEndpoint string        `envconfig:"HF_ENDPOINT" default:"https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english" validate:"required,url"`
	HFToken    string        `envconfig:"HF_API_TOKEN"`
	Timeout    time.Duration `envconfig:"REMOTE_TIMEOUT" default:"0s" validate:"gte=0s"`

	FallbackEnabled bool   `envconfig:"FALLBACK_ENABLED" default:"true"`
	LocalClassifier string `envconfig:"LOCAL_CLASSIFIER" default:"lexical" validate:"oneof=lexical vader"`

	HealthcheckInterval time.Duration `envconfig:"HEALTHCHECK_INTERVAL" default:"0s" validate:"gte=0s"`
	HTTPAddr            string        `envconfig:"HTTP_ADDR" default:"localhost:8080" validate:"required,hostname_port"`
}

var validate = validator.New()

// Load reads AppConfig from the environment. Call LoadEnv first to pull in
// an env file.
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("process env: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c AppConfig) SlogLevel() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

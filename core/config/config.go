package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ErrMissingAPIKey is returned by Load when the selected provider has no credential.
var ErrMissingAPIKey = errors.New("llm api key is missing")

type Config struct {
	OTel   OTelConfig
	LLM    LLMConfig
	CORS   CORSConfig
	Env    string
	Port   string
	NodeID int64
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
	Environment    string
	SampleRatio    float64 // fraction of root spans kept
}

type LLMConfig struct {
	Provider  string // "openai" or "anthropic"
	APIKey    string
	BaseURL   string // Optional: for custom endpoints
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables.
// In development it also reads a .env file from the working directory if one exists.
// A missing credential for the selected provider is fatal: the server must not start
// without a way to reach its only upstream.
func Load() (Config, error) {
	if getEnv("APP_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI))

	cfg := Config{
		Env:    getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8000"),
		NodeID: getEnvInt64("NODE_ID", 1),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "email-helper"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
			Environment:    getEnv("APP_ENV", "development"),
			SampleRatio:    getEnvFloat("OTEL_TRACES_SAMPLER_ARG", 1),
		},
		LLM: LLMConfig{
			Provider:  provider,
			BaseURL:   getEnv("LLM_BASE_URL", ""),
			MaxTokens: getEnvInt("LLM_MAX_TOKENS", 1024),
			Timeout:   getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	// The server write timeout is derived from this; without an upstream deadline a slow
	// completion would outlive the connection and the reply would be dropped.
	if cfg.LLM.Timeout <= 0 {
		return Config{}, fmt.Errorf("LLM_TIMEOUT must be positive, got %s", cfg.LLM.Timeout)
	}

	switch provider {
	case ProviderOpenAI:
		cfg.LLM.APIKey = getEnv("OPENAI_API_KEY", "")
		cfg.LLM.Model = getEnv("LLM_MODEL", "gpt-4o-mini")
		if cfg.LLM.APIKey == "" {
			return Config{}, fmt.Errorf("%w: set OPENAI_API_KEY in your environment", ErrMissingAPIKey)
		}
	case ProviderAnthropic:
		cfg.LLM.APIKey = getEnv("ANTHROPIC_API_KEY", "")
		cfg.LLM.Model = getEnv("LLM_MODEL", "claude-sonnet-4-5")
		if cfg.LLM.APIKey == "" {
			return Config{}, fmt.Errorf("%w: set ANTHROPIC_API_KEY in your environment", ErrMissingAPIKey)
		}
	default:
		return Config{}, fmt.Errorf("unsupported LLM_PROVIDER: %q", provider)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package infra

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"yatra/pkg/utils"
)

type Config struct {
	Port               string
	AppEnv             string
	LogLevel           string
	PostgresURL        string
	Generator          utils.GeneratorConfig
	JWTSecret          string
	PlanTimeout        time.Duration
	PlanRatePerMinute  int
	CORSAllowedOrigins []string
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// LoadConfig reads the process environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	timeoutSeconds, err := getEnvInt("PLAN_TIMEOUT", 60)
	if err != nil {
		return nil, err
	}
	rate, err := getEnvInt("PLAN_RATE_PER_MINUTE", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               getEnvWithDefault("PORT", "8080"),
		AppEnv:             getEnvWithDefault("APP_ENV", "production"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "info"),
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		Generator:          getGeneratorConfig(),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		PlanTimeout:        time.Duration(timeoutSeconds) * time.Second,
		PlanRatePerMinute:  rate,
		CORSAllowedOrigins: splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
	}

	if cfg.Generator.APIKey == "" {
		return nil, fmt.Errorf("%s is required when using the %s provider",
			apiKeyEnv(cfg.Generator.Provider), cfg.Generator.Provider)
	}
	if cfg.PlanRatePerMinute < 1 {
		return nil, fmt.Errorf("PLAN_RATE_PER_MINUTE must be positive, got %d", cfg.PlanRatePerMinute)
	}
	return cfg, nil
}

func getGeneratorConfig() utils.GeneratorConfig {
	provider := strings.ToLower(getEnvWithDefault("TEXT_GENERATOR_PROVIDER", "gemini"))

	var model string
	switch provider {
	case "openai":
		model = getEnvWithDefault("OPENAI_MODEL", openai.GPT4oMini)
	default:
		model = getEnvWithDefault("GEMINI_MODEL", utils.DefaultGeminiModel)
	}

	return utils.GeneratorConfig{
		Provider: provider,
		APIKey:   os.Getenv(apiKeyEnv(provider)),
		Model:    model,
	}
}

func apiKeyEnv(provider string) string {
	if provider == "openai" {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

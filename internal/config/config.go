// Package config loads CLI and client settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/yfantasy/internal/platform/logging"
)

// Config stores runtime configuration for the query client and CLI.
type Config struct {
	GameCode    string `validate:"required,alphanum"`
	GameID      string `validate:"omitempty,numeric"`
	LeagueID    string `validate:"omitempty,numeric"`
	AccessToken string `validate:"required"`

	BaseURL string `validate:"omitempty,url"`

	Retries     int           `validate:"min=1"`
	Backoff     time.Duration `validate:"min=0"`
	HTTPTimeout time.Duration `validate:"min=0"`

	CircuitEnabled        bool
	CircuitFailureCount   int           `validate:"min=1"`
	CircuitOpenTimeout    time.Duration `validate:"gt=0"`
	CircuitHalfOpenMaxReq int           `validate:"min=1"`

	KeyCacheTTL time.Duration `validate:"min=0"`

	LogLevel logging.Level
}

// Load reads configuration from YF_* environment variables and validates it.
func Load() (Config, error) {
	retries, err := getEnvAsInt("YF_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse YF_RETRIES: %w", err)
	}

	backoff, err := time.ParseDuration(getEnv("YF_BACKOFF", "300ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse YF_BACKOFF: %w", err)
	}

	httpTimeout, err := time.ParseDuration(getEnv("YF_HTTP_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse YF_HTTP_TIMEOUT: %w", err)
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("YF_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse YF_CIRCUIT_ENABLED: %w", err)
	}

	circuitFailureCount, err := getEnvAsInt("YF_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse YF_CIRCUIT_FAILURE_COUNT: %w", err)
	}

	circuitOpenTimeout, err := time.ParseDuration(getEnv("YF_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse YF_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}

	circuitHalfOpenMaxReq, err := getEnvAsInt("YF_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse YF_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	keyCacheTTL, err := time.ParseDuration(getEnv("YF_KEY_CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse YF_KEY_CACHE_TTL: %w", err)
	}

	cfg := Config{
		GameCode:              strings.ToLower(getEnv("YF_GAME_CODE", "nfl")),
		GameID:                strings.TrimSpace(os.Getenv("YF_GAME_ID")),
		LeagueID:              strings.TrimSpace(os.Getenv("YF_LEAGUE_ID")),
		AccessToken:           strings.TrimSpace(os.Getenv("YF_ACCESS_TOKEN")),
		BaseURL:               strings.TrimSpace(os.Getenv("YF_BASE_URL")),
		Retries:               retries,
		Backoff:               backoff,
		HTTPTimeout:           httpTimeout,
		CircuitEnabled:        circuitEnabled,
		CircuitFailureCount:   circuitFailureCount,
		CircuitOpenTimeout:    circuitOpenTimeout,
		CircuitHalfOpenMaxReq: circuitHalfOpenMaxReq,
		KeyCacheTTL:           keyCacheTTL,
		LogLevel:              parseLogLevel(getEnv("YF_LOG_LEVEL", "info")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

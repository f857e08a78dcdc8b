package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr            string
	DataDir         string
	SessionSecret   string
	Environment     string
	RunSeed         bool
	MaxBodyBytes    int64
	SessionTokenTTL time.Duration
	MetricsEnabled  bool
}

func Load() Config {
	return Config{
		Addr:            getEnv("OCTOMATE_ADDR", ":8080"),
		DataDir:         getEnv("OCTOMATE_DATA_DIR", "data"),
		SessionSecret:   getEnv("OCTOMATE_SESSION_SECRET", "octomate-demo-secret"),
		Environment:     getEnv("OCTOMATE_ENV", "development"),
		RunSeed:         getEnvBool("OCTOMATE_SEED", true),
		MaxBodyBytes:    int64(getEnvInt("OCTOMATE_MAX_BODY_BYTES", 1048576)),
		SessionTokenTTL: getEnvDuration("OCTOMATE_SESSION_TTL", 12*time.Hour),
		MetricsEnabled:  getEnvBool("OCTOMATE_METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("OCTOMATE_DATA_DIR is required")
	}
	if c.Environment == "production" && c.SessionSecret == "octomate-demo-secret" {
		return fmt.Errorf("OCTOMATE_SESSION_SECRET must be changed in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("OCTOMATE_MAX_BODY_BYTES must be at least 1024")
	}
	if c.SessionTokenTTL < time.Minute {
		return fmt.Errorf("OCTOMATE_SESSION_TTL must be at least one minute")
	}
	return nil
}

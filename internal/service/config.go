package service

import (
	"os"
	"strconv"
	"time"
)

// Config holds state manager settings.
type Config struct {
	GenerateTimeout time.Duration
	LogUseCases     bool
}

func DefaultConfig() Config {
	return Config{GenerateTimeout: 15 * time.Second}
}

// LoadConfig returns a Config with environment overrides applied.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("PATHWISE_GENERATE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.GenerateTimeout = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("PATHWISE_LOG_CALLS"); v == "true" || v == "1" {
		cfg.LogUseCases = true
	}
	return cfg
}

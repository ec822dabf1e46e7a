package gateway

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ServerConfig holds gateway HTTP settings.
type ServerConfig struct {
	Addr            string
	CORSOrigins     []string
	ResourceKind    string
	LogMode         string
	ShutdownTimeout time.Duration
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":5001",
		CORSOrigins:     []string{"*"},
		ResourceKind:    DefaultResourceKind,
		LogMode:         "dev",
		ShutdownTimeout: 5 * time.Second,
	}
}

// LoadServerConfig returns a ServerConfig with environment overrides applied.
func LoadServerConfig() ServerConfig {
	cfg := DefaultServerConfig()
	if v := os.Getenv("PATHWISE_GATEWAY_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PATHWISE_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("PATHWISE_RESOURCE_KIND"); v != "" {
		cfg.ResourceKind = v
	}
	if v := os.Getenv("PATHWISE_LOG_MODE"); v != "" {
		cfg.LogMode = v
	}
	if v := os.Getenv("PATHWISE_SHUTDOWN_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ShutdownTimeout = time.Duration(n) * time.Millisecond
		}
	}
	return cfg
}

// ClientConfig holds settings for calling a remote gateway.
type ClientConfig struct {
	BaseURL      string
	Timeout      time.Duration
	ResourceKind string
}

func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:      "http://localhost:5001",
		Timeout:      15 * time.Second,
		ResourceKind: DefaultResourceKind,
	}
}

// LoadClientConfig returns a ClientConfig with environment overrides applied.
func LoadClientConfig() ClientConfig {
	cfg := DefaultClientConfig()
	if v := os.Getenv("PATHWISE_GATEWAY_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("PATHWISE_GATEWAY_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("PATHWISE_RESOURCE_KIND"); v != "" {
		cfg.ResourceKind = v
	}
	return cfg
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

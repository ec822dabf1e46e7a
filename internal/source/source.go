// Package source selects where curricula come from.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/gateway"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/service"
)

type Mode string

const (
	ModeLocal   Mode = "local"
	ModeGateway Mode = "gateway"
	ModeLLM     Mode = "llm"
)

// ErrUnknownMode is a configuration error for an unsupported source mode.
var ErrUnknownMode = errors.New("unknown curriculum source")

type Config struct {
	Mode       Mode
	LocalDelay time.Duration
	Gateway    gateway.ClientConfig
	LLM        llm.LLMConfig
}

func DefaultConfig() Config {
	return Config{
		Mode:    ModeLocal,
		Gateway: gateway.DefaultClientConfig(),
		LLM:     llm.DefaultConfig(),
	}
}

// LoadConfig returns a Config with environment overrides applied.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("PATHWISE_SOURCE"); v != "" {
		cfg.Mode = Mode(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := os.Getenv("PATHWISE_LOCAL_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.LocalDelay = time.Duration(n) * time.Millisecond
		}
	}
	cfg.Gateway = gateway.LoadClientConfig()
	cfg.LLM = llm.LoadConfig()
	return cfg
}

// Deps are optional collaborators for sources that call out.
type Deps struct {
	// LLMLog receives upstream call events when LLM.LogCalls is set.
	LLMLog io.Writer
}

// New builds the source cfg.Mode names.
func New(cfg Config, deps Deps) (service.CurriculumSource, error) {
	switch cfg.Mode {
	case ModeLocal, "":
		return Local{Delay: cfg.LocalDelay}, nil
	case ModeGateway:
		return gateway.NewClient(cfg.Gateway), nil
	case ModeLLM:
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls && deps.LLMLog != nil {
			observer = llm.NewLogObserver(deps.LLMLog)
		}
		client := llm.NewChatClient(cfg.LLM, observer)
		return gateway.NewPlanner(client, gateway.ResourceMapping{Kind: cfg.Gateway.ResourceKind}), nil
	default:
		return nil, fmt.Errorf("%w %q (want local, gateway or llm)", ErrUnknownMode, cfg.Mode)
	}
}

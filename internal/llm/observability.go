package llm

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// CallEvent describes one finished Generate call, retries included.
type CallEvent struct {
	Task     TaskType
	Model    string
	Attempts int
	Latency  time.Duration
	Err      error
}

// Success reports whether the call produced a completion.
func (e CallEvent) Success() bool { return e.Err == nil }

// Code is a short stable label for the failure, or "" on success.
func (e CallEvent) Code() string { return errorCode(e.Err) }

// Observer is told about every finished Generate call.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(CallEvent)

func (f ObserverFunc) OnCallComplete(event CallEvent) { f(event) }

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// LogObserver writes one slog text line per call.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	level, status := slog.LevelInfo, "ok"
	if !event.Success() {
		level, status = slog.LevelWarn, "err:"+event.Code()
	}
	o.logger.Log(context.Background(), level, "llm_call",
		"task", string(event.Task),
		"model", event.Model,
		"attempts", event.Attempts,
		"latency_ms", event.Latency.Milliseconds(),
		"status", status,
	)
}

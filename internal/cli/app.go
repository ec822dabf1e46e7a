package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/service"
)

// App holds what the commands operate on. Manager must be built with the
// App as its notifier so notices reach the command output.
type App struct {
	Manager *service.Manager
	Store   service.Store

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Serve runs the gateway until ctx is done. Nil disables `serve`.
	Serve func(ctx context.Context) error

	Now func() time.Time

	mu      sync.Mutex
	pending []service.Notice
}

// Notify queues a notice until the running command flushes it.
func (a *App) Notify(n service.Notice) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = append(a.pending, n)
}

// flushNotices prints and clears queued notices.
func (a *App) flushNotices(w io.Writer) {
	a.mu.Lock()
	pending := a.pending
	a.pending = nil
	a.mu.Unlock()

	for _, n := range pending {
		fmt.Fprintln(w, formatter.FormatNotice(n.Level == service.NoticeError, n.Message))
	}
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// load hydrates the manager from the store before a command reads state.
func (a *App) load(ctx context.Context) error {
	if a.Manager == nil {
		return fmt.Errorf("curriculum manager not configured")
	}
	return a.Manager.Load(ctx)
}

// requirePlan loads state and fails with ErrNoCurriculum when nothing has
// been generated yet.
func (a *App) requirePlan(ctx context.Context) (service.State, error) {
	if err := a.load(ctx); err != nil {
		return service.State{}, err
	}
	st := a.Manager.Snapshot()
	if !st.IsGenerated {
		return st, fmt.Errorf("%w: run `pathwise generate` first", service.ErrNoCurriculum)
	}
	return st, nil
}

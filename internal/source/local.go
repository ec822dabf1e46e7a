package source

import (
	"context"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/generator"
)

// Local generates curricula in-process with the deterministic generator.
type Local struct {
	// Delay simulates a network round-trip before the plan is returned.
	Delay time.Duration
}

func (l Local) RequestCurriculum(ctx context.Context, prefs domain.Preferences) ([]domain.DayPlan, error) {
	if l.Delay > 0 {
		t := time.NewTimer(l.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return generator.Generate(prefs), nil
}

package service

import (
	"context"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
)

// CurriculumSource produces a day plan for a set of preferences.
type CurriculumSource interface {
	RequestCurriculum(ctx context.Context, prefs domain.Preferences) ([]domain.DayPlan, error)
}

// SourceFunc adapts a function to CurriculumSource.
type SourceFunc func(ctx context.Context, prefs domain.Preferences) ([]domain.DayPlan, error)

func (f SourceFunc) RequestCurriculum(ctx context.Context, prefs domain.Preferences) ([]domain.DayPlan, error) {
	return f(ctx, prefs)
}

// Store persists the active curriculum and its completion state.
type Store interface {
	// SaveActive stores c as the only active curriculum.
	SaveActive(ctx context.Context, c *domain.Curriculum) error
	// Active returns the active curriculum, or ErrNoCurriculum.
	Active(ctx context.Context) (*domain.Curriculum, error)
	SetDayCompleted(ctx context.Context, id string, day int, completed bool) error
	ResetProgress(ctx context.Context, id string) error
	History(ctx context.Context, limit int) ([]repository.CurriculumSummary, error)
	// Delete removes a curriculum other than the active one.
	Delete(ctx context.Context, id string) (*domain.Curriculum, error)
}

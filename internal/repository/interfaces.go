package repository

import (
	"context"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// CurriculumSummary is a list row: the curriculum header plus day counts.
type CurriculumSummary struct {
	ID            string
	Topic         string
	DisplayTopic  string
	Pace          domain.Pace
	Depth         domain.Depth
	Source        string
	Active        bool
	TotalDays     int
	CompletedDays int
	CreatedAt     string
}

type CurriculumRepo interface {
	// Create inserts c and its days. When active is true the row is marked
	// as the active curriculum; the caller deactivates any previous one.
	Create(ctx context.Context, c *domain.Curriculum, active bool) error
	GetByID(ctx context.Context, id string) (*domain.Curriculum, error)
	GetActive(ctx context.Context) (*domain.Curriculum, error)
	List(ctx context.Context, limit int) ([]CurriculumSummary, error)
	Deactivate(ctx context.Context) error
	// SetDayCompleted records a day's completion flag. Completing a day
	// places it after every day already completed.
	SetDayCompleted(ctx context.Context, id string, day int, completed bool) error
	ResetProgress(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

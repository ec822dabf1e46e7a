package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
)

// SQLStore implements Store on the SQLite curriculum repository.
type SQLStore struct {
	curricula repository.CurriculumRepo
	uow       db.UnitOfWork
}

func NewSQLStore(curricula repository.CurriculumRepo, uow db.UnitOfWork) *SQLStore {
	return &SQLStore{curricula: curricula, uow: uow}
}

// SaveActive deactivates the previous curriculum and inserts c as active in
// one transaction.
func (s *SQLStore) SaveActive(ctx context.Context, c *domain.Curriculum) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteCurriculumRepo(tx)
		if err := txRepo.Deactivate(ctx); err != nil {
			return err
		}
		return txRepo.Create(ctx, c, true)
	})
}

func (s *SQLStore) Active(ctx context.Context) (*domain.Curriculum, error) {
	c, err := s.curricula.GetActive(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoCurriculum
	}
	return c, err
}

// SetDayCompleted updates the day row and the curriculum's updated_at in
// one transaction.
func (s *SQLStore) SetDayCompleted(ctx context.Context, id string, day int, completed bool) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCurriculumRepo(tx).SetDayCompleted(ctx, id, day, completed)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return errors.Join(ErrNoCurriculum, err)
	}
	return err
}

func (s *SQLStore) ResetProgress(ctx context.Context, id string) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCurriculumRepo(tx).ResetProgress(ctx, id)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return errors.Join(ErrNoCurriculum, err)
	}
	return err
}

// Delete removes a stored curriculum that is not the active one and returns
// what was removed.
func (s *SQLStore) Delete(ctx context.Context, id string) (*domain.Curriculum, error) {
	var deleted *domain.Curriculum
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteCurriculumRepo(tx)
		c, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		active, err := txRepo.GetActive(ctx)
		switch {
		case err == nil && active.ID == c.ID:
			return ErrActiveCurriculum
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return err
		}
		if err := txRepo.Delete(ctx, id); err != nil {
			return err
		}
		deleted = c
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errors.Join(ErrNoCurriculum, err)
	}
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (s *SQLStore) History(ctx context.Context, limit int) ([]repository.CurriculumSummary, error) {
	return s.curricula.List(ctx, limit)
}

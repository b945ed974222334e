package service

import (
	"context"
	"time"

	"github.com/evmartin/brigade/internal/db"
	"github.com/evmartin/brigade/internal/domain"
	"github.com/evmartin/brigade/internal/repository"
	"github.com/evmartin/brigade/internal/scheduler"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
}

func NewSessionService(sessions repository.SessionRepo, uow db.UnitOfWork) SessionService {
	return &sessionService{sessions: sessions, uow: uow}
}

func (s *sessionService) CreateSession(ctx context.Context, steps []domain.Step, meta domain.SessionMeta) (*domain.Session, error) {
	now := time.Now().UTC()

	session, err := domain.NewSession(steps, meta, now)
	if err != nil {
		return nil, err
	}

	session.ID = uuid.New().String()
	for i := range session.Steps {
		session.Steps[i].ID = uuid.New().String()
		session.Steps[i].SessionID = session.ID
	}

	// Derived once at creation. Editing step durations later never
	// recomputes it; the aggregator can always re-derive on demand.
	session.EstimatedMinutes, _ = scheduler.Aggregate(session.Steps)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context, includeFinished bool) ([]*domain.Session, error) {
	return s.sessions.List(ctx, includeFinished)
}

func (s *sessionService) StartSession(ctx context.Context, id string) (*domain.Session, error) {
	return s.transition(ctx, id, func(session *domain.Session, now time.Time) error {
		return session.Start(now)
	})
}

func (s *sessionService) FinishSession(ctx context.Context, id string) (*domain.Session, error) {
	return s.transition(ctx, id, func(session *domain.Session, now time.Time) error {
		return session.Finish(now)
	})
}

func (s *sessionService) CancelSession(ctx context.Context, id string) (*domain.Session, error) {
	return s.transition(ctx, id, func(session *domain.Session, now time.Time) error {
		return session.Cancel(now)
	})
}

func (s *sessionService) StartStep(ctx context.Context, sessionID string, order int) (*domain.Session, error) {
	return s.transition(ctx, sessionID, func(session *domain.Session, now time.Time) error {
		return session.StartStep(order, now)
	})
}

func (s *sessionService) FinishStep(ctx context.Context, sessionID string, order int) (*domain.Session, error) {
	return s.transition(ctx, sessionID, func(session *domain.Session, now time.Time) error {
		return session.FinishStep(order, now)
	})
}

func (s *sessionService) SkipStep(ctx context.Context, sessionID string, order int) (*domain.Session, error) {
	return s.transition(ctx, sessionID, func(session *domain.Session, now time.Time) error {
		return session.SkipStep(order, now)
	})
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// transition loads the session, applies one state-machine move, and persists
// the resulting snapshot, all within a single transaction. The read happens
// inside the transaction so concurrent writers serialize per session.
func (s *sessionService) transition(ctx context.Context, id string, apply func(*domain.Session, time.Time) error) (*domain.Session, error) {
	var session *domain.Session

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)

		loaded, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := apply(loaded, time.Now().UTC()); err != nil {
			return err
		}

		if err := repo.Update(ctx, loaded); err != nil {
			return err
		}
		session = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

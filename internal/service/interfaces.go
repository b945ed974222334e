package service

import (
	"context"

	"github.com/evmartin/brigade/internal/domain"
)

// SessionService drives the cooking-session lifecycle. Every transition
// validates against the domain state machine, then persists the full
// session snapshot within one transaction. Errors are always returned to
// the caller; nothing is retried or swallowed here.
type SessionService interface {
	CreateSession(ctx context.Context, steps []domain.Step, meta domain.SessionMeta) (*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, includeFinished bool) ([]*domain.Session, error)

	StartSession(ctx context.Context, id string) (*domain.Session, error)
	FinishSession(ctx context.Context, id string) (*domain.Session, error)
	CancelSession(ctx context.Context, id string) (*domain.Session, error)

	StartStep(ctx context.Context, sessionID string, order int) (*domain.Session, error)
	FinishStep(ctx context.Context, sessionID string, order int) (*domain.Session, error)
	SkipStep(ctx context.Context, sessionID string, order int) (*domain.Session, error)

	Delete(ctx context.Context, id string) error
}

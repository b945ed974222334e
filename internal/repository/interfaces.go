package repository

import (
	"context"

	"github.com/evmartin/brigade/internal/domain"
)

// SessionRepo persists cooking sessions together with their steps. Steps
// have no lifecycle of their own; they are written and loaded as part of the
// owning session. Serializing concurrent writers per session id is the
// responsibility of this layer's transactions, not the domain engine.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, includeFinished bool) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

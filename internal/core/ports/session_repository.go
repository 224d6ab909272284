package ports

import (
	"context"

	"github.com/graviti/shiptracker/internal/core/domain"
)

// SessionRepository persists dashboard sessions between requests.
type SessionRepository interface {
	// Get returns a copy of the session, or domain.ErrSessionNotFound.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/graviti/shiptracker/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	// Authenticate resolves a signed session token to its live session.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

package ports

import (
	"context"

	"github.com/graviti/shiptracker/internal/core/domain"
)

// UserRepository stores credential records.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

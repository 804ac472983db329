package repositories

import (
	"context"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// UserRepositoryFacade persists user credentials for the auth surface.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

package repository

import (
	"context"

	"github.com/wtwr-app/wtwr-backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence.
// GetByEmail includes the password hash; every other read omits nothing at
// the store level, serialization strips the hash instead.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id, name, avatar string) (*entity.User, error)
}

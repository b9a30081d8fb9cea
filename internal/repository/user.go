package repository

import (
	"context"

	"github.com/askarbekov/account-service/internal/domain"
)

// UserRepository is the persistence contract for accounts. Emails passed in
// are already normalized; implementations must return domain.ErrDuplicateEmail
// when the email unique constraint is violated and domain.ErrUserNotFound
// when a lookup misses.
type UserRepository interface {
	Create(ctx context.Context, email, name, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

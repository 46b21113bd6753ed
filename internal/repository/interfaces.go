package repository

import (
	"context"

	"github.com/calperez/auth-service/internal/domain"
)

type UserRepository interface {
	// Create inserts the user. A unique-email violation is reported as
	// domain.ErrEmailExists.
	Create(ctx context.Context, user *domain.User) error
	// GetByID returns the active user with the given id, or
	// domain.ErrUserNotFound when absent or inactive.
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	// GetByEmail returns the active user with the given email, or
	// domain.ErrUserNotFound when absent or inactive.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Repositories struct {
	User UserRepository
}

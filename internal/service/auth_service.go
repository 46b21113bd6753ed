package service

import (
	"context"
	"errors"
	"time"

	"github.com/calperez/auth-service/internal/domain"
	"github.com/calperez/auth-service/internal/password"
	"github.com/calperez/auth-service/internal/repository"
	"github.com/calperez/auth-service/internal/validate"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new active user. It returns a *domain.ValidationError
// for a malformed email or weak password and domain.ErrEmailExists when the
// email already has an active account.
func (s *AuthService) Register(ctx context.Context, email, plainPassword string) (*domain.User, error) {
	if err := validate.Email(email); err != nil {
		return nil, err
	}
	if err := validate.Password(plainPassword); err != nil {
		return nil, err
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          email,
		HashedPassword: hashed,
		CreatedAt:      time.Now().UTC(),
		IsActive:       true,
	}

	// The unique index is the real guard: a concurrent registration that
	// slips past the lookup above still fails here with ErrEmailExists.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates email/password. Unknown email and wrong password both
// come back as domain.ErrInvalidCredentials; the unknown-email path runs a
// dummy verification so the two cases take similar time.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		password.FakeVerify()
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !password.Verify(plainPassword, user.HashedPassword) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// GetCurrentUser re-resolves a session's user id to the live record, so a
// user deactivated after login loses access on the next check.
func (s *AuthService) GetCurrentUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

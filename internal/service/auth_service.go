package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/sleep-journal/internal/auth"
	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/repository"
	"github.com/google/uuid"
)

// AuthService registers users, checks credentials and restores sessions.
type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type authService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
	tokens auth.TokenManager
}

func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher, tokens auth.TokenManager) AuthService {
	return &authService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates an account. A taken username yields domain.ErrConflict
// and no row is written.
func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.session(user)
}

// Login verifies the credentials. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password for %s: %w", user.ID, err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	return s.session(user)
}

// CurrentUser resolves the user behind a verified token. A token for a user
// that no longer exists is unauthorized.
func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) session(user *domain.User) (*domain.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	return &domain.AuthResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

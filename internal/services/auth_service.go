package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/isdelr/auth-service-be/internal/auth"
	"github.com/isdelr/auth-service-be/internal/models"
)

// AuthServiceProvider defines the interface for the auth workflow.
type AuthServiceProvider interface {
	Signup(ctx context.Context, email, password, name string) (models.User, string, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
	CurrentUser(ctx context.Context, id string) (models.User, error)
}

// AuthService orchestrates signup and login against the user store. It holds
// no cross-request state; correctness under concurrent signups rests on the
// store's unique constraint.
type AuthService struct {
	store  UserStore
	tokens *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Signup registers a new user and issues a session token. Returns
// ErrEmailTaken when the email is already registered, including when a
// concurrent signup wins the race between the pre-check and the insert.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (models.User, string, error) {
	_, err := s.store.FindByEmail(ctx, email)
	if err == nil {
		return models.User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, "", fmt.Errorf("signup lookup: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.Create(ctx, email, hash, name)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return models.User{}, "", ErrEmailTaken
		}
		return models.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return user, token, nil
}

// Login verifies credentials and issues a session token. A missing account,
// an account without a password hash, and a wrong password all collapse into
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", fmt.Errorf("login lookup: %w", err)
	}

	if user.PasswordHash == "" || !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return user, token, nil
}

// CurrentUser loads the account behind an authenticated session.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quillpost/quillpost/internal/auth"
	"github.com/quillpost/quillpost/internal/metrics"
	"github.com/quillpost/quillpost/internal/model"
	"github.com/quillpost/quillpost/internal/repository"
)

// Auth service errors.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLength = 8

// UserStore is the persistence surface the auth service needs.
// Implemented by *repository.Repository.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// TokenIssuer signs a bearer token for an authenticated user.
// Implemented by *token.Manager.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

// AuthService orchestrates signup and login.
type AuthService struct {
	users   UserStore
	tokens  TokenIssuer
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens TokenIssuer, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		users:   users,
		tokens:  tokens,
		metrics: recorder,
	}
}

// Signup registers a new user and returns a signed bearer token.
// Fails with ErrEmailExists when a user with that email already exists,
// whether caught by the lookup or by the store's unique index when two
// signups race on the same email.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return "", err
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return "", ErrEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return "", ErrEmailExists
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncSignup()

	return signed, nil
}

// Login verifies credentials and returns a signed bearer token.
// Fails with ErrUserNotFound when no user has that email and with
// ErrInvalidCredentials when the stored hash does not verify.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !match {
		s.metrics.IncAuthFailure()
		return "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncLogin()

	return signed, nil
}

// validateCredentials applies signup input rules.
func validateCredentials(email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}

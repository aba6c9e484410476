// Package users implements the registration and login flow: structural
// validation, credential hashing and verification, and token issuance.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jukebox/internal/auth"
	"jukebox/internal/models"
	"jukebox/internal/store"
)

var (
	// ErrMissingFields indicates a required field is absent or empty.
	ErrMissingFields = errors.New("username and password are required")
	// ErrInvalidCredentials is the single undifferentiated login failure;
	// unknown user and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Store describes the persistence operations required by the user service.
type Store interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenIssuer mints a signed identity token for a user id.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// Service exposes the identity workflows.
type Service interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type service struct {
	store  Store
	tokens TokenIssuer
}

// New wires a Service backed by the provided Store and token issuer.
func New(store Store, tokens TokenIssuer) Service {
	return &service{store: store, tokens: tokens}
}

func (s *service) Register(ctx context.Context, username, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrMissingFields
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user, err := s.store.CreateUser(ctx, username, hash)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrMissingFields
	}

	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn an equivalent comparison so unknown usernames take as
			// long as wrong passwords.
			auth.CompareDummy(password)
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Package users implements account registration and login for the dev
// server.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/noteskeeper/internal/server/auth"
)

const MinPasswordLength = 6

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	cost                        int
}

func NewService(repo Repository, secretKey string, accessTokenValidityDuration time.Duration) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(secretKey),
		accessTokenValidityDuration: accessTokenValidityDuration,
		cost:                        bcrypt.DefaultCost,
	}
}

// WithCost overrides the bcrypt cost; values below bcrypt.MinCost are ignored.
func (s *Service) WithCost(cost int) *Service {
	if cost >= bcrypt.MinCost {
		s.cost = cost
	}
	return s
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case email == "":
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	case len(password) < MinPasswordLength:
		return nil, fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password hash: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{
		ID:           "user-" + uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("error comparing password with hash: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating access token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to its account.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

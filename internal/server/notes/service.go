// Package notes implements per-owner note storage for the dev server.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, owner, title, body string) (*Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: body is required", ErrInvalidInput)
	}

	note, err := s.repo.Create(ctx, &Note{
		ID:        "note-" + uuid.NewString(),
		Title:     title,
		Body:      body,
		CreatedAt: s.now().UTC(),
		Owner:     owner,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return note, nil
}

func (s *Service) Get(ctx context.Context, owner, id string) (*Note, error) {
	return s.repo.Get(ctx, owner, id)
}

func (s *Service) List(ctx context.Context, owner string, archived bool) ([]Note, error) {
	return s.repo.List(ctx, owner, archived)
}

func (s *Service) Archive(ctx context.Context, owner, id string) error {
	return s.repo.SetArchived(ctx, owner, id, true)
}

func (s *Service) Unarchive(ctx context.Context, owner, id string) error {
	return s.repo.SetArchived(ctx, owner, id, false)
}

func (s *Service) Delete(ctx context.Context, owner, id string) error {
	return s.repo.Delete(ctx, owner, id)
}

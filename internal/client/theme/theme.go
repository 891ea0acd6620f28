// Package theme keeps the light/dark preference and the styles derived from
// it. Every change is applied to the styles first and then persisted.
package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/dmitrijs2005/noteskeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/noteskeeper/internal/logging"
)

type State struct {
	repo metadata.Repository
	log  logging.Logger

	mu      sync.RWMutex
	current models.Theme
	styles  Styles
}

func New(repo metadata.Repository, log logging.Logger) *State {
	if log == nil {
		log = logging.NewNop()
	}
	return &State{
		repo:    repo,
		log:     log.With("component", "theme"),
		current: models.DefaultTheme,
		styles:  NewStyles(models.DefaultTheme),
	}
}

// Load applies the persisted preference. Missing or unknown values fall
// back to the default theme.
func (s *State) Load(ctx context.Context) error {
	t := models.DefaultTheme

	v, ok, err := s.repo.Get(ctx, metadata.KeyTheme)
	switch {
	case err != nil:
		s.log.Warn(ctx, "failed to read theme", "error", err)
	case ok:
		if parsed, perr := models.ParseTheme(v); perr == nil {
			t = parsed
		} else {
			s.log.Warn(ctx, "ignoring persisted theme", "value", v)
		}
	}

	return s.Set(ctx, t)
}

// Toggle flips between light and dark and returns the new theme.
func (s *State) Toggle(ctx context.Context) (models.Theme, error) {
	next := s.Current().Toggled()
	return next, s.Set(ctx, next)
}

// Set applies t and persists it. A persistence failure is logged and
// returned; the new theme stays applied.
func (s *State) Set(ctx context.Context, t models.Theme) error {
	if _, err := models.ParseTheme(string(t)); err != nil {
		return err
	}

	s.Apply(t)

	if err := s.repo.Set(ctx, metadata.KeyTheme, string(t)); err != nil {
		s.log.Error(ctx, "failed to save theme", "theme", t, "error", err)
		return fmt.Errorf("save theme error: %w", err)
	}
	return nil
}

// Apply switches the in-memory theme and styles without persisting.
func (s *State) Apply(t models.Theme) {
	styles := NewStyles(t)
	s.mu.Lock()
	s.current = t
	s.styles = styles
	s.mu.Unlock()
}

func (s *State) Current() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *State) Styles() Styles {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.styles
}

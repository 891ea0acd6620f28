// Package store keeps the client-side mirror of the remote notes collection.
//
// The mirror changes only after the remote side has confirmed an operation;
// there are no optimistic updates and failed calls leave it untouched.
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/noteskeeper/internal/client/api"
	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/dmitrijs2005/noteskeeper/internal/logging"
	"golang.org/x/sync/errgroup"
)

// State is a snapshot of the store. Err is empty when the last operation
// succeeded.
type State struct {
	Notes   []models.Note
	Loading bool
	Err     string
}

// Store is the notes mirror. It is safe for concurrent use; the mutex guards
// the state value only, so concurrent operations are applied in the order
// their responses arrive.
type Store struct {
	client api.Client
	log    logging.Logger

	mu    sync.RWMutex
	state State
}

func New(client api.Client, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{client: client, log: log.With("component", "store")}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Notes = slices.Clone(s.state.Notes)
	return st
}

// FetchAll replaces the mirror with the active and archived collections,
// requested concurrently. Overlapping calls are not deduplicated: the last
// one to finish wins.
func (s *Store) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	var active, archived []models.Note
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		active, err = s.client.ListNotes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		archived, err = s.client.ListArchivedNotes(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Warn(ctx, "fetch notes failed", "error", err)
		s.mu.Lock()
		s.state.Loading = false
		s.state.Err = err.Error()
		s.mu.Unlock()
		return err
	}

	notes := make([]models.Note, 0, len(active)+len(archived))
	notes = append(notes, active...)
	notes = append(notes, archived...)

	s.mu.Lock()
	s.state.Notes = notes
	s.state.Loading = false
	s.mu.Unlock()

	s.log.Debug(ctx, "notes fetched", "active", len(active), "archived", len(archived))
	return nil
}

// Create sends a new note and appends the server's version of it.
func (s *Store) Create(ctx context.Context, title, body string) (models.Note, error) {
	n, err := s.client.CreateNote(ctx, models.CreateNoteRequest{Title: title, Body: body})
	if err != nil {
		s.fail(ctx, "create note", err)
		return models.Note{}, err
	}

	s.mu.Lock()
	s.state.Notes = append(s.state.Notes, n)
	s.state.Err = ""
	s.mu.Unlock()
	return n, nil
}

// Remove deletes a note remotely and drops it from the mirror.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := s.client.DeleteNote(ctx, id); err != nil {
		s.fail(ctx, "delete note", err, "id", id)
		return err
	}

	s.mu.Lock()
	s.state.Notes = slices.DeleteFunc(slices.Clone(s.state.Notes), func(n models.Note) bool { return n.ID == id })
	s.state.Err = ""
	s.mu.Unlock()
	return nil
}

func (s *Store) Archive(ctx context.Context, id string) error {
	if err := s.client.ArchiveNote(ctx, id); err != nil {
		s.fail(ctx, "archive note", err, "id", id)
		return err
	}
	s.setArchived(id, true)
	return nil
}

func (s *Store) Unarchive(ctx context.Context, id string) error {
	if err := s.client.UnarchiveNote(ctx, id); err != nil {
		s.fail(ctx, "unarchive note", err, "id", id)
		return err
	}
	s.setArchived(id, false)
	return nil
}

func (s *Store) setArchived(id string, archived bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := slices.Clone(s.state.Notes)
	for i := range notes {
		if notes[i].ID == id {
			notes[i].Archived = archived
		}
	}
	s.state.Notes = notes
	s.state.Err = ""
}

func (s *Store) fail(ctx context.Context, op string, err error, args ...any) {
	s.log.Warn(ctx, op+" failed", append(args, "error", err)...)
	s.mu.Lock()
	s.state.Err = err.Error()
	s.mu.Unlock()
}

func (s *Store) SelectActive() []models.Note {
	return Active(s.notes())
}

func (s *Store) SelectArchived() []models.Note {
	return Archived(s.notes())
}

func (s *Store) SelectByID(id string) (models.Note, bool) {
	return ByID(s.notes(), id)
}

// Get returns a note from the mirror, asking the server when it is not
// there. The mirror is not modified.
func (s *Store) Get(ctx context.Context, id string) (models.Note, error) {
	if n, ok := s.SelectByID(id); ok {
		return n, nil
	}
	return s.client.GetNote(ctx, id)
}

// notes returns the current slice. Mutations always install a fresh slice,
// so callers may read it without holding the lock.
func (s *Store) notes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Notes
}

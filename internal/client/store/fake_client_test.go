package store

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/noteskeeper/internal/client/api"
	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
)

// fakeClient is an in-memory notes service.
type fakeClient struct {
	mu     sync.Mutex
	notes  []models.Note
	nextID int

	createErr  error
	listErr    error
	archiveErr error
	getCalls   int
}

var _ api.Client = (*fakeClient)(nil)

func notFound() error {
	return &api.Error{StatusCode: http.StatusNotFound, Message: "Note is not found", Kind: api.ErrNotFound}
}

func (f *fakeClient) Register(context.Context, models.RegisterRequest) error { return nil }

func (f *fakeClient) Login(context.Context, models.LoginRequest) (models.LoginResult, error) {
	return models.LoginResult{}, nil
}

func (f *fakeClient) CurrentUser(context.Context) (models.User, error) { return models.User{}, nil }

func (f *fakeClient) CreateNote(_ context.Context, req models.CreateNoteRequest) (models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return models.Note{}, f.createErr
	}
	f.nextID++
	n := models.Note{
		ID:        fmt.Sprintf("n%d", f.nextID),
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: time.Date(2024, 1, f.nextID, 0, 0, 0, 0, time.UTC),
		Owner:     "user-1",
	}
	f.notes = append(f.notes, n)
	return n, nil
}

func (f *fakeClient) list(archived bool) ([]models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Note{}
	for _, n := range f.notes {
		if n.Archived == archived {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeClient) ListNotes(context.Context) ([]models.Note, error) { return f.list(false) }

func (f *fakeClient) ListArchivedNotes(context.Context) ([]models.Note, error) { return f.list(true) }

func (f *fakeClient) GetNote(_ context.Context, id string) (models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	for _, n := range f.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return models.Note{}, notFound()
}

func (f *fakeClient) setArchived(id string, v bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.archiveErr != nil {
		return f.archiveErr
	}
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes[i].Archived = v
			return nil
		}
	}
	return notFound()
}

func (f *fakeClient) ArchiveNote(_ context.Context, id string) error { return f.setArchived(id, true) }

func (f *fakeClient) UnarchiveNote(_ context.Context, id string) error {
	return f.setArchived(id, false)
}

func (f *fakeClient) DeleteNote(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return notFound()
}

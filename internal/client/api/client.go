package api

import (
	"context"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	CurrentUser(ctx context.Context) (models.User, error)

	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	ListArchivedNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)
	ArchiveNote(ctx context.Context, id string) error
	UnarchiveNote(ctx context.Context, id string) error
	DeleteNote(ctx context.Context, id string) error
}

// TokenSource supplies the bearer token for authenticated requests.
// An empty string means no token.
type TokenSource interface {
	AccessToken() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) AccessToken() string { return f() }

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/dmitrijs2005/noteskeeper/internal/client/store"
	"github.com/dmitrijs2005/noteskeeper/internal/client/theme"
	"github.com/dmitrijs2005/noteskeeper/internal/logging"
)

// ErrNotLoggedIn is returned by commands that need a session when there is none.
var ErrNotLoggedIn = errors.New("please login")

// SessionState is the session surface used by the CLI.
type SessionState interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	RestoreFromStorage(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
	User() (models.User, bool)
	IsAuthenticated() bool
	LastEmail(ctx context.Context) string
}

// NotesStore is the notes mirror surface used by the CLI.
type NotesStore interface {
	FetchAll(ctx context.Context) error
	Create(ctx context.Context, title, body string) (models.Note, error)
	Remove(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	SelectActive() []models.Note
	SelectArchived() []models.Note
	Get(ctx context.Context, id string) (models.Note, error)
	Snapshot() store.State
}

// ThemeState is the theme surface used by the CLI.
type ThemeState interface {
	Toggle(ctx context.Context) (models.Theme, error)
	Set(ctx context.Context, t models.Theme) error
	Current() models.Theme
	Styles() theme.Styles
}

// Deps are the state containers the App drives.
type Deps struct {
	Session SessionState
	Notes   NotesStore
	Theme   ThemeState
	Log     logging.Logger
}

type App struct {
	session SessionState
	notes   NotesStore
	theme   ThemeState
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	restored bool
}

func New(d Deps, in io.Reader, out io.Writer) *App {
	log := d.Log
	if log == nil {
		log = logging.NewNop()
	}
	return &App{
		session: d.Session,
		notes:   d.Notes,
		theme:   d.Theme,
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// restore loads the persisted session once per App.
func (a *App) restore(ctx context.Context) {
	if a.restored {
		return
	}
	a.restored = true
	if _, err := a.session.RestoreFromStorage(ctx); err != nil {
		a.log.Warn(ctx, "could not validate stored session", "error", err)
	}
}

// requireSession restores the session and fails when nobody is logged in.
func (a *App) requireSession(ctx context.Context) error {
	a.restore(ctx)
	if !a.session.IsAuthenticated() {
		return ErrNotLoggedIn
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) styles() theme.Styles {
	return a.theme.Styles()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) success(msg string) {
	a.println(a.styles().Success.Render(msg))
}

// ReportError prints err the way the user sees every failure.
func (a *App) ReportError(err error) {
	if err == nil {
		return
	}
	a.println(a.styles().Error.Render("Error: " + err.Error()))
}

// status is shown in the shell prompt.
func (a *App) status() string {
	s := string(a.theme.Current())
	if u, ok := a.session.User(); ok {
		s = u.Email + " " + s
	} else if a.session.IsAuthenticated() {
		s = "logged in " + s
	}
	return "(" + s + ")"
}

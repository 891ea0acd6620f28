package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/noteskeeper/internal/client/api"
	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/dmitrijs2005/noteskeeper/internal/client/store"
	"github.com/dmitrijs2005/noteskeeper/internal/client/theme"
)

type fakeSession struct {
	token     string
	stored    string
	user      *models.User
	lastEmail string

	loginErr    error
	registerErr error
	restoreErr  error

	logins     []models.LoginRequest
	registered []models.RegisterRequest
	restores   int
}

func (f *fakeSession) Login(_ context.Context, email, password string) error {
	f.logins = append(f.logins, models.LoginRequest{Email: email, Password: password})
	if f.loginErr != nil {
		return f.loginErr
	}
	f.token, f.stored = "tok", "tok"
	f.user = &models.User{ID: "user-1", Name: "Ann", Email: email}
	f.lastEmail = email
	return nil
}

func (f *fakeSession) Register(ctx context.Context, name, email, password string) error {
	f.registered = append(f.registered, models.RegisterRequest{Name: name, Email: email, Password: password})
	if f.registerErr != nil {
		return f.registerErr
	}
	return f.Login(ctx, email, password)
}

func (f *fakeSession) RestoreFromStorage(context.Context) (bool, error) {
	f.restores++
	if f.restoreErr != nil {
		return false, f.restoreErr
	}
	if f.stored == "" {
		return false, nil
	}
	f.token = f.stored
	if f.user == nil {
		f.user = &models.User{ID: "user-1", Name: "Ann", Email: "ann@example.com"}
	}
	return true, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.token, f.stored, f.user = "", "", nil
	return nil
}

func (f *fakeSession) User() (models.User, bool) {
	if f.user == nil {
		return models.User{}, false
	}
	return *f.user, true
}

func (f *fakeSession) IsAuthenticated() bool { return f.token != "" }

func (f *fakeSession) LastEmail(context.Context) string { return f.lastEmail }

type fakeNotes struct {
	remote []models.Note
	notes  []models.Note

	createErr error
	fetchErr  error
	calls     []string
}

func (f *fakeNotes) FetchAll(context.Context) error {
	f.calls = append(f.calls, "fetch")
	if f.fetchErr != nil {
		return f.fetchErr
	}
	f.notes = append([]models.Note(nil), f.remote...)
	return nil
}

func (f *fakeNotes) Create(_ context.Context, title, body string) (models.Note, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return models.Note{}, f.createErr
	}
	n := models.Note{ID: "note-new", Title: title, Body: body}
	f.remote = append(f.remote, n)
	f.notes = append(f.notes, n)
	return n, nil
}

func (f *fakeNotes) Remove(_ context.Context, id string) error {
	f.calls = append(f.calls, "remove:"+id)
	for i, n := range f.remote {
		if n.ID == id {
			f.remote = append(f.remote[:i], f.remote[i+1:]...)
			return nil
		}
	}
	return &api.Error{StatusCode: http.StatusNotFound, Message: "Note is not found", Kind: api.ErrNotFound}
}

func (f *fakeNotes) Archive(_ context.Context, id string) error {
	f.calls = append(f.calls, "archive:"+id)
	return nil
}

func (f *fakeNotes) Unarchive(_ context.Context, id string) error {
	f.calls = append(f.calls, "unarchive:"+id)
	return nil
}

func (f *fakeNotes) SelectActive() []models.Note { return store.Active(f.notes) }

func (f *fakeNotes) SelectArchived() []models.Note { return store.Archived(f.notes) }

func (f *fakeNotes) Get(_ context.Context, id string) (models.Note, error) {
	f.calls = append(f.calls, "get:"+id)
	if n, ok := store.ByID(f.remote, id); ok {
		return n, nil
	}
	return models.Note{}, &api.Error{StatusCode: http.StatusNotFound, Message: "Note is not found", Kind: api.ErrNotFound}
}

func (f *fakeNotes) Snapshot() store.State { return store.State{Notes: f.notes} }

type fakeTheme struct {
	current models.Theme
	setErr  error
}

func (f *fakeTheme) Toggle(ctx context.Context) (models.Theme, error) {
	next := f.current.Toggled()
	return next, f.Set(ctx, next)
}

func (f *fakeTheme) Set(_ context.Context, t models.Theme) error {
	f.current = t
	return f.setErr
}

func (f *fakeTheme) Current() models.Theme { return f.current }

func (f *fakeTheme) Styles() theme.Styles { return theme.NewStyles(f.current) }

type testApp struct {
	app     *App
	session *fakeSession
	notes   *fakeNotes
	theme   *fakeTheme
	out     *bytes.Buffer
}

func newTestApp(input string) *testApp {
	ta := &testApp{
		session: &fakeSession{},
		notes:   &fakeNotes{},
		theme:   &fakeTheme{current: models.ThemeLight},
		out:     &bytes.Buffer{},
	}
	ta.app = New(Deps{Session: ta.session, Notes: ta.notes, Theme: ta.theme}, strings.NewReader(input), ta.out)
	return ta
}

func loggedIn(ta *testApp) *testApp {
	ta.session.stored = "tok"
	return ta
}

// stubPrompts answers text prompts and password prompts from queues.
func stubPrompts(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origText, origPass, origMulti := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origText, origPass, origMulti
	})

	next := func() (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
}

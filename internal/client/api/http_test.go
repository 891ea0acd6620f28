package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/dmitrijs2005/noteskeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, code int, status, message string, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	body := map[string]any{"status": status, "message": message}
	if data != nil {
		body["data"] = data
	}
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func newTestClient(t *testing.T, h http.HandlerFunc, token string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", TokenFunc(func() string { return token }))
}

func TestLogin_SendsCredentialsAndReturnsToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.LoginRequest{Email: "a@b.c", Password: "secret"}, req)

		writeEnvelope(t, w, http.StatusOK, "success", "User logged successfully", map[string]string{"accessToken": "tok-1"})
	}, "")

	res, err := c.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.AccessToken)
}

func TestLogin_Rejected_SurfacesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, "fail", "Password is wrong", nil)
	}, "")

	_, err := c.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	assert.EqualError(t, err, "Password is wrong")
	assert.ErrorIs(t, err, ErrValidation)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestLogin_MissingToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, "success", "", map[string]string{})
	}, "")

	_, err := c.Login(context.Background(), models.LoginRequest{})
	assert.EqualError(t, err, "Login failed")
}

func TestRegister(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)
		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ann", req.Name)
		writeEnvelope(t, w, http.StatusCreated, "success", "User Created", map[string]string{"userId": "user-1"})
	}, "")

	require.NoError(t, c.Register(context.Background(), models.RegisterRequest{Name: "Ann", Email: "a@b.c", Password: "secret"}))
}

func TestRegister_FallbackMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, "not json")
	}, "")

	err := c.Register(context.Background(), models.RegisterRequest{})
	assert.EqualError(t, err, "Registration failed")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthenticatedCall_SendsBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/users/me", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, "success", "", models.User{ID: "user-1", Name: "Ann", Email: "a@b.c"})
	}, "tok-1")

	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "user-1", Name: "Ann", Email: "a@b.c"}, u)
}

func TestAuthenticatedCall_ReadsTokenPerRequest(t *testing.T) {
	var token atomic.Value
	token.Store("first")

	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, "success", "", []models.Note{})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, TokenFunc(func() string { return token.Load().(string) }))
	_, err := c.ListNotes(context.Background())
	require.NoError(t, err)
	token.Store("second")
	_, err = c.ListNotes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer first", "Bearer second"}, seen)
}

func TestAuthenticatedCall_NoToken_FailsBeforeRequest(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, "")

	_, err := c.ListNotes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualError(t, err, "no access token found")
	assert.Zero(t, calls.Load())
}

func TestRequestIDIsForwarded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get("X-Request-ID"))
		writeEnvelope(t, w, http.StatusOK, "success", "", nil)
	}, "tok")

	ctx := logging.WithRequestID(context.Background(), "req-42")
	require.NoError(t, c.ArchiveNote(ctx, "n1"))
}

func TestNoteEndpoints_MethodsAndPaths(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	note := models.Note{ID: "note-1", Title: "T", Body: "B", CreatedAt: created, Owner: "user-1"}

	type call struct{ method, path string }
	var got []call

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, call{r.Method, r.URL.Path})
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/notes":
			var req models.CreateNoteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, models.CreateNoteRequest{Title: "T", Body: "B"}, req)
			writeEnvelope(t, w, http.StatusCreated, "success", "Note created", note)
		case r.Method == http.MethodGet && r.URL.Path == "/notes":
			writeEnvelope(t, w, http.StatusOK, "success", "", []models.Note{note})
		case r.Method == http.MethodGet && r.URL.Path == "/notes/archived":
			writeEnvelope(t, w, http.StatusOK, "success", "", nil)
		case r.Method == http.MethodGet && r.URL.Path == "/notes/note-1":
			writeEnvelope(t, w, http.StatusOK, "success", "", note)
		default:
			writeEnvelope(t, w, http.StatusOK, "success", "ok", nil)
		}
	}, "tok")
	ctx := context.Background()

	n, err := c.CreateNote(ctx, models.CreateNoteRequest{Title: "T", Body: "B"})
	require.NoError(t, err)
	assert.Equal(t, note, n)

	active, err := c.ListNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Note{note}, active)

	archived, err := c.ListArchivedNotes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, archived)
	assert.Empty(t, archived)

	one, err := c.GetNote(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, note, one)

	require.NoError(t, c.ArchiveNote(ctx, "note-1"))
	require.NoError(t, c.UnarchiveNote(ctx, "note-1"))
	require.NoError(t, c.DeleteNote(ctx, "note-1"))

	assert.Equal(t, []call{
		{http.MethodPost, "/notes"},
		{http.MethodGet, "/notes"},
		{http.MethodGet, "/notes/archived"},
		{http.MethodGet, "/notes/note-1"},
		{http.MethodPost, "/notes/note-1/archive"},
		{http.MethodPost, "/notes/note-1/unarchive"},
		{http.MethodDelete, "/notes/note-1"},
	}, got)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		message string
		kind    error
		want    string
	}{
		{"unauthorized", http.StatusUnauthorized, "Invalid token", ErrUnauthorized, "Invalid token"},
		{"forbidden", http.StatusForbidden, "", ErrUnauthorized, "Failed to delete note"},
		{"not found", http.StatusNotFound, "Note is not found", ErrNotFound, "Note is not found"},
		{"bad request", http.StatusBadRequest, "", ErrValidation, "Failed to delete note"},
		{"server error", http.StatusInternalServerError, "boom", ErrUnavailable, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, tt.code, "fail", tt.message, nil)
			}, "tok")

			err := c.DeleteNote(context.Background(), "n1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestTransportError_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, TokenFunc(func() string { return "tok" }))
	_, err := c.ListNotes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.EqualError(t, err, "Failed to get notes: server unavailable")
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, "success", "", nil)
	}, "tok")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.ArchiveNote(ctx, "n1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWithTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	c := NewHTTPClient(srv.URL, TokenFunc(func() string { return "tok" }), WithTimeout(50*time.Millisecond))
	err := c.DeleteNote(context.Background(), "n1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestWithTimeout_SurvivesWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Minute}

	c := NewHTTPClient("http://example.invalid", nil, WithTimeout(2*time.Second), WithHTTPClient(hc))
	assert.Equal(t, 2*time.Second, c.http.Timeout)

	c = NewHTTPClient("http://example.invalid", nil, WithHTTPClient(hc), WithTimeout(3*time.Second))
	assert.Equal(t, 3*time.Second, c.http.Timeout)

	c = NewHTTPClient("http://example.invalid", nil, WithHTTPClient(hc))
	assert.Equal(t, time.Minute, c.http.Timeout)
	assert.Equal(t, time.Minute, hc.Timeout, "caller's client is not modified")
}

func TestWithHTTPClient_KeepsCallerTransport(t *testing.T) {
	var used atomic.Bool
	rt := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		used.Store(true)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		return http.DefaultTransport.RoundTrip(r)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, "success", "", nil)
	}))
	defer srv.Close()

	hc := &http.Client{Transport: rt}
	c := NewHTTPClient(srv.URL, TokenFunc(func() string { return "tok" }), WithHTTPClient(hc))
	require.NoError(t, c.ArchiveNote(context.Background(), "n1"))
	assert.True(t, used.Load())
	_, wrapped := hc.Transport.(*authTransport)
	assert.False(t, wrapped, "caller's client must not be modified")
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

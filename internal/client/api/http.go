package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/dmitrijs2005/noteskeeper/internal/logging"
)

const statusSuccess = "success"

// envelope wraps every response of the notes API.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// HTTPClient talks to the notes API over HTTP(S).
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger

	// timeout is applied after every option ran; nil keeps the
	// client's own Timeout.
	timeout *time.Duration
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. Its transport is
// still wrapped to inject credentials.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		cp := *hc
		c.http = &cp
	}
}

// WithTimeout sets a per-request timeout. Zero means none. It wins over the
// Timeout of a client passed with WithHTTPClient, whatever the option order.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = &d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     logging.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.timeout != nil {
		c.http.Timeout = *c.timeout
	}

	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &authTransport{base: base}
	return c
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/register", false, req, nil, "Registration failed")
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	var res models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", false, req, &res, "Login failed"); err != nil {
		return models.LoginResult{}, err
	}
	if res.AccessToken == "" {
		return models.LoginResult{}, &Error{StatusCode: http.StatusOK, Message: "Login failed", Kind: ErrUnavailable}
	}
	return res, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodGet, "/users/me", true, nil, &u, "Failed to get user data")
	return u, err
}

func (c *HTTPClient) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	var n models.Note
	err := c.do(ctx, http.MethodPost, "/notes", true, req, &n, "Failed to create note")
	return n, err
}

func (c *HTTPClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	return c.list(ctx, "/notes", "Failed to get notes")
}

func (c *HTTPClient) ListArchivedNotes(ctx context.Context) ([]models.Note, error) {
	return c.list(ctx, "/notes/archived", "Failed to get archived notes")
}

func (c *HTTPClient) list(ctx context.Context, path, fallback string) ([]models.Note, error) {
	var notes []models.Note
	if err := c.do(ctx, http.MethodGet, path, true, nil, &notes, fallback); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (c *HTTPClient) GetNote(ctx context.Context, id string) (models.Note, error) {
	var n models.Note
	err := c.do(ctx, http.MethodGet, notePath(id, ""), true, nil, &n, "Failed to get note")
	return n, err
}

func (c *HTTPClient) ArchiveNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, notePath(id, "/archive"), true, nil, nil, "Failed to archive note")
}

func (c *HTTPClient) UnarchiveNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, notePath(id, "/unarchive"), true, nil, nil, "Failed to unarchive note")
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, notePath(id, ""), true, nil, nil, "Failed to delete note")
}

func notePath(id, suffix string) string {
	return "/notes/" + url.PathEscape(id) + suffix
}

// do performs one request/response cycle. On success the envelope data is
// decoded into out (if non-nil). fallback is the message used when the
// server does not supply one.
func (c *HTTPClient) do(ctx context.Context, method, path string, auth bool, in, out any, fallback string) error {
	if auth {
		token := c.tokens.AccessToken()
		if token == "" {
			return ErrNoToken
		}
		ctx = withAuth(ctx, token)
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", fallback, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", fallback, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api request failed", "method", method, "path", path, "error", err)
		return &Error{
			Message: fallback + ": " + ErrUnavailable.Error(),
			Kind:    ErrUnavailable,
			cause:   err,
		}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fallback, Kind: ErrUnavailable, cause: err}
	}

	var (
		env       envelope
		decodeErr error
	)
	if len(bytes.TrimSpace(raw)) > 0 {
		decodeErr = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = fallback
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg, Kind: kindForStatus(resp.StatusCode)}
	}

	if decodeErr != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fallback, Kind: ErrUnavailable, cause: decodeErr}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fallback, Kind: ErrUnavailable, cause: err}
	}
	return nil
}

package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/noteskeeper/internal/logging"
)

const (
	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Request-ID"
)

type authKey struct{}

// withAuth marks the request context as needing a bearer token.
func withAuth(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, authKey{}, token)
}

// authTransport injects the bearer token and the request id into outgoing
// requests.
type authTransport struct {
	base http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, _ := req.Context().Value(authKey{}).(string)
	requestID, _ := logging.RequestIDFrom(req.Context())
	if token == "" && requestID == "" {
		return t.base.RoundTrip(req)
	}

	// RoundTrip must not modify the caller's request.
	r := req.Clone(req.Context())
	if token != "" {
		r.Header.Set(authorizationHeader, "Bearer "+token)
	}
	if requestID != "" {
		r.Header.Set(requestIDHeader, requestID)
	}
	return t.base.RoundTrip(r)
}

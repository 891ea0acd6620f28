// Package api is the client side of the remote notes REST API.
//
// # Overview
//
// Client is the transport-agnostic contract used by the session and the
// notes store. HTTPClient implements it over net/http: requests and
// responses are JSON, and every response is wrapped in an envelope
//
//	{"status": "success"|"fail", "message": "...", "data": ...}
//
// Authenticated calls carry "Authorization: Bearer <token>" where the token
// is read from a TokenSource on every request. A call that needs a token
// while none is present fails before anything is sent.
//
// # Error Handling
//
// Failures are reported as *Error values carrying the server message (or a
// per-operation fallback such as "Failed to create note"). They unwrap to one
// of the sentinels ErrUnavailable, ErrUnauthorized, ErrValidation and
// ErrNotFound, so callers match them with errors.Is.
package api

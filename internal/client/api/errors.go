package api

import (
	"errors"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("request rejected")
	ErrNotFound     = errors.New("not found")
)

// ErrNoToken is returned for authenticated calls made without a token.
var ErrNoToken = &Error{Message: "no access token found", Kind: ErrUnauthorized}

// Error is a failed API call. Message is what the user gets to see.
type Error struct {
	StatusCode int
	Message    string
	Kind       error

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.cause}
}

// kindForStatus maps a non-2xx HTTP status to a sentinel.
func kindForStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 400 && code < 500:
		return ErrValidation
	default:
		return ErrUnavailable
	}
}

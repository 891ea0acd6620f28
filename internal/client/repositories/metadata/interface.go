// Package metadata persists small client-side key/value settings: the bearer
// token, the theme preference and the last login email. It plays the role
// browser local storage plays for a web client.
package metadata

import "context"

// Well-known keys.
const (
	KeyAccessToken = "access_token"
	KeyTheme       = "theme"
	KeyLastEmail   = "last_email"
)

// Repository is a string key/value store. Absent keys are reported with
// ok == false and a nil error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

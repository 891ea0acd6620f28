package logging

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDKey is the log field carrying the request identifier.
const RequestIDKey = "request_id"

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

// WithRequestID returns a copy of ctx carrying requestID. An empty id is
// replaced by a freshly generated one.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom extracts the request identifier stored by WithRequestID.
func RequestIDFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// Package utils provides small helpers shared by the transport layer:
// type-safe context keys for the request's session, redirects that carry
// a status message, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the caller's [models.Session] is
// stored for the duration of a request.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, s)
}

// GetSessionFromContext retrieves the session stored by [WithSession].
//
// ok is false when the request is anonymous, i.e. no session was stored
// or the stored value has an unexpected type.
//
// Example usage:
//
//	s, ok := utils.GetSessionFromContext(r.Context())
//	if !ok {
//	    // not logged in
//	}
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(models.Session)
	return s, ok
}

// Package auth supplies the current-user collaborator: a user ID carried on
// the request context, resolved by a pluggable Authenticator. Session and
// credential management live outside this service.
package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct{}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// UserID extracts the authenticated user's ID from the context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}

// Authenticator resolves the acting user from an incoming request.
type Authenticator interface {
	Authenticate(r *http.Request) (userID string, ok bool)
}

// Static always reports the same user. Used for single-user local
// deployments where the device itself is the identity boundary.
type Static struct {
	ID string
}

func (s Static) Authenticate(*http.Request) (string, bool) {
	return s.ID, s.ID != ""
}

// Header trusts a user identifier set by an authenticating reverse proxy.
type Header struct {
	Name string
}

func (h Header) Authenticate(r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.Header.Get(h.Name))
	return id, id != ""
}

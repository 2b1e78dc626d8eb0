package auth

import (
	"context"

	"github.com/google/uuid"
)

// UserContext holds the identity carried by a validated platform token.
type UserContext struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// IsService reports whether the token belongs to a backend service rather
// than an end user.
func (u *UserContext) IsService() bool {
	return u.Role == "service_role"
}

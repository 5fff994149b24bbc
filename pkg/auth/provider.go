package auth

import (
	"context"
	"net/http"
)

type contextKey string

const (
	UserContextKey        contextKey = "auth.user"
	ParticipantContextKey contextKey = "auth.participant"
)

type Provider interface {
	Authenticate(ctx context.Context, r *http.Request) (context.Context, error)
}

package header

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/annikahug/cadenza/pkg/auth"
)

// Provider trusts identity headers set by a fronting proxy. The study kiosk
// setup forwards the participant code this way.
type Provider struct {
	userHeader        string
	participantHeader string
}

type Option func(*Provider)

func New(opts ...Option) (*Provider, error) {
	p := &Provider{}

	for _, opt := range opts {
		opt(p)
	}

	if p.userHeader == "" {
		p.userHeader = "X-Forwarded-User"
	}

	if p.participantHeader == "" {
		p.participantHeader = "X-Participant"
	}

	return p, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	user := strings.TrimSpace(r.Header.Get(p.userHeader))
	participant := strings.TrimSpace(r.Header.Get(p.participantHeader))

	if user == "" && participant == "" {
		return ctx, errors.New("no user information found in headers")
	}

	if user != "" {
		ctx = context.WithValue(ctx, auth.UserContextKey, user)
	}

	if participant != "" {
		ctx = context.WithValue(ctx, auth.ParticipantContextKey, participant)
	}

	return ctx, nil
}

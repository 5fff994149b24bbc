package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type SessionService struct {
	Options []RequestOption
}

func NewSessionService(opts ...RequestOption) SessionService {
	return SessionService{
		Options: opts,
	}
}

type Session struct {
	ID          string `json:"id"`
	Participant string `json:"participant,omitempty"`

	Conditions []string `json:"conditions"`

	Trials []Trial `json:"trials,omitempty"`

	Created time.Time `json:"created"`
}

func (s *SessionService) New(ctx context.Context, participant string, opts ...RequestOption) (*Session, error) {
	cfg := newRequestConfig(append(s.Options, opts...)...)

	body := map[string]any{
		"participant": participant,
	}

	resp, err := cfg.do(ctx, http.MethodPost, "/sessions", body)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var session Session

	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *SessionService) Get(ctx context.Context, id string, opts ...RequestOption) (*Session, error) {
	cfg := newRequestConfig(append(s.Options, opts...)...)

	resp, err := cfg.do(ctx, http.MethodGet, "/sessions/"+id, nil)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var session Session

	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}

	return &session, nil
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
)

type MarkupService struct {
	Options []RequestOption
}

func NewMarkupService(opts ...RequestOption) MarkupService {
	return MarkupService{
		Options: opts,
	}
}

// Mark mirrors the server's wire form of an annotation mark.
type Mark struct {
	Type string `json:"type"`

	Start int `json:"start,omitempty"`
	End   int `json:"end,omitempty"`

	Level string `json:"level,omitempty"`

	Pitch  string `json:"pitch,omitempty"`
	Rate   string `json:"rate,omitempty"`
	Volume string `json:"volume,omitempty"`

	At         int `json:"at,omitempty"`
	DurationMS int `json:"duration_ms,omitempty"`
}

type MarkupRequest struct {
	Text  string `json:"text"`
	Marks []Mark `json:"marks,omitempty"`

	Voice    string `json:"voice,omitempty"`
	Language string `json:"language,omitempty"`
}

type Markup struct {
	Document string `json:"document"`
	Marks    int    `json:"marks"`
}

func (s *MarkupService) New(ctx context.Context, input MarkupRequest, opts ...RequestOption) (*Markup, error) {
	cfg := newRequestConfig(append(s.Options, opts...)...)

	resp, err := cfg.do(ctx, http.MethodPost, "/markup", input)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var markup Markup

	if err := json.NewDecoder(resp.Body).Decode(&markup); err != nil {
		return nil, err
	}

	return &markup, nil
}

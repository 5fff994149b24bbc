package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

type TrialService struct {
	Options []RequestOption
}

func NewTrialService(opts ...RequestOption) TrialService {
	return TrialService{
		Options: opts,
	}
}

type Trial struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`

	Image     string `json:"image,omitempty"`
	Condition string `json:"condition"`

	Description string `json:"description"`
	Markup      string `json:"markup,omitempty"`

	Created time.Time `json:"created"`
}

type TrialRequest struct {
	SessionID string
	Condition string

	Model  string
	Prompt string

	Name        string
	Image       []byte
	ContentType string
}

func (s *TrialService) New(ctx context.Context, input TrialRequest, opts ...RequestOption) (*Trial, error) {
	cfg := newRequestConfig(append(s.Options, opts...)...)

	body := map[string]any{
		"session_id": input.SessionID,
		"condition":  input.Condition,

		"model":  input.Model,
		"prompt": input.Prompt,

		"name":         input.Name,
		"image":        base64.StdEncoding.EncodeToString(input.Image),
		"content_type": input.ContentType,
	}

	resp, err := cfg.do(ctx, http.MethodPost, "/trials", body)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var trial Trial

	if err := json.NewDecoder(resp.Body).Decode(&trial); err != nil {
		return nil, err
	}

	return &trial, nil
}

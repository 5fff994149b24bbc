// Package custom implements speech synthesis against a user-supplied HTTP
// endpoint speaking a plain JSON contract.
package custom

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/annikahug/cadenza/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
}

func NewSynthesizer(url string, options ...Option) (*Synthesizer, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	cfg := &Config{
		url: url,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.client == nil {
		cfg.client = http.DefaultClient
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

type synthesizeRequest struct {
	Input string `json:"input"`

	Voice    string `json:"voice,omitempty"`
	Language string `json:"language,omitempty"`
	Format   string `json:"format,omitempty"`

	Instructions string `json:"instructions,omitempty"`

	Markup bool `json:"markup,omitempty"`
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	body, err := json.Marshal(synthesizeRequest{
		Input: input,

		Voice:    options.Voice,
		Language: options.Language,
		Format:   options.Format,

		Instructions: options.Instructions,

		Markup: options.Markup,
	})

	if err != nil {
		return nil, err
	}

	r, _ := http.NewRequestWithContext(ctx, "POST", s.url, bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	if s.token != "" {
		r.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(r)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")

	if contentType == "" {
		contentType = "audio/mpeg"
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: options.Voice,

		Content:     data,
		ContentType: contentType,
	}, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	return &provider.UpstreamError{
		Status: resp.StatusCode,
		Reason: strings.TrimSpace(string(data)),
	}
}

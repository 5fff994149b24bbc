// Package azure implements speech synthesis against the Azure Cognitive
// Services text-to-speech REST endpoint.
package azure

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/annikahug/cadenza/pkg/markup"
	"github.com/annikahug/cadenza/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

const (
	defaultVoice    = "en-US-JennyNeural"
	defaultLanguage = "en-US"
	defaultFormat   = "audio-16khz-128kbitrate-mono-mp3"
)

type Synthesizer struct {
	*Config
}

func NewSynthesizer(url string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url: url,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.url == "" && cfg.region != "" {
		cfg.url = "https://" + cfg.region + ".tts.speech.microsoft.com"
	}

	if cfg.client == nil {
		cfg.client = http.DefaultClient
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	voice := options.Voice

	if voice == "" {
		voice = defaultVoice
	}

	language := options.Language

	if language == "" {
		language = defaultLanguage
	}

	format := options.Format

	if format == "" {
		format = defaultFormat
	}

	document := input

	if !options.Markup {
		// plain text still travels as a markup document
		val, err := markup.Compile(input, nil, voice, language)

		if err != nil {
			return nil, err
		}

		document = val
	}

	url := strings.TrimRight(s.url, "/") + "/cognitiveservices/v1"

	r, _ := http.NewRequestWithContext(ctx, "POST", url, strings.NewReader(document))
	r.Header.Set("Content-Type", "application/ssml+xml")
	r.Header.Set("X-Microsoft-OutputFormat", format)

	if s.token != "" {
		r.Header.Set("Ocp-Apim-Subscription-Key", s.token)
	}

	if s.region != "" {
		r.Header.Set("Ocp-Apim-Subscription-Region", s.region)
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
		Model: voice,

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

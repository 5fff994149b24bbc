package client

import (
	"context"
	"io"
	"net/http"
)

type SynthesisService struct {
	Options []RequestOption
}

func NewSynthesisService(opts ...RequestOption) SynthesisService {
	return SynthesisService{
		Options: opts,
	}
}

type SynthesizeRequest struct {
	Text  string `json:"text"`
	Marks []Mark `json:"marks,omitempty"`

	Condition string `json:"condition,omitempty"`

	Voice    string `json:"voice,omitempty"`
	Language string `json:"language,omitempty"`
	Format   string `json:"format,omitempty"`
}

type Synthesis struct {
	Content     []byte
	ContentType string
}

func (s *SynthesisService) New(ctx context.Context, input SynthesizeRequest, opts ...RequestOption) (*Synthesis, error) {
	cfg := newRequestConfig(append(s.Options, opts...)...)

	resp, err := cfg.do(ctx, http.MethodPost, "/synthesize", input)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &Synthesis{
		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type ToneService struct {
	Options []RequestOption
}

func NewToneService(opts ...RequestOption) ToneService {
	return ToneService{
		Options: opts,
	}
}

func (s *ToneService) Get(ctx context.Context, duration time.Duration, opts ...RequestOption) (*Synthesis, error) {
	cfg := newRequestConfig(append(s.Options, opts...)...)

	path := fmt.Sprintf("/tone?duration=%d", duration.Milliseconds())

	resp, err := cfg.do(ctx, http.MethodGet, path, nil)

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

// Package client is a small SDK for the cadenza study server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type Client struct {
	Sessions SessionService
	Trials   TrialService

	Markups   MarkupService
	Syntheses SynthesisService
	Tones     ToneService

	Ratings RatingService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Sessions: NewSessionService(opts...),
		Trials:   NewTrialService(opts...),

		Markups:   NewMarkupService(opts...),
		Syntheses: NewSynthesisService(opts...),
		Tones:     NewToneService(opts...),

		Ratings: NewRatingService(opts...),
	}
}

type RequestConfig struct {
	URL   string
	Token string

	Client *http.Client
}

type RequestOption func(*RequestConfig)

func WithURL(url string) RequestOption {
	return func(c *RequestConfig) {
		c.URL = url
	}
}

func WithToken(token string) RequestOption {
	return func(c *RequestConfig) {
		c.Token = token
	}
}

func WithClient(client *http.Client) RequestOption {
	return func(c *RequestConfig) {
		c.Client = client
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *RequestConfig) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)

		if err != nil {
			return nil, err
		}

		reader = bytes.NewReader(data)
	}

	url := strings.TrimRight(c.URL, "/") + "/v1" + path

	req, err := http.NewRequestWithContext(ctx, method, url, reader)

	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()

		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("request failed: %s", strings.TrimSpace(string(data)))
	}

	return resp, nil
}

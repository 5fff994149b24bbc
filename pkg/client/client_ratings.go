package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type RatingService struct {
	Options []RequestOption
}

func NewRatingService(opts ...RequestOption) RatingService {
	return RatingService{
		Options: opts,
	}
}

type Rating struct {
	ID      string `json:"id"`
	TrialID string `json:"trial_id"`

	Naturalness   int `json:"naturalness"`
	Pleasantness  int `json:"pleasantness"`
	Comprehension int `json:"comprehension"`

	Comment string `json:"comment,omitempty"`

	Created time.Time `json:"created"`
}

type RatingRequest struct {
	TrialID string `json:"trial_id"`

	Naturalness   int `json:"naturalness"`
	Pleasantness  int `json:"pleasantness"`
	Comprehension int `json:"comprehension"`

	Comment string `json:"comment,omitempty"`
}

func (s *RatingService) New(ctx context.Context, input RatingRequest, opts ...RequestOption) (*Rating, error) {
	cfg := newRequestConfig(append(s.Options, opts...)...)

	resp, err := cfg.do(ctx, http.MethodPost, "/ratings", input)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var rating Rating

	if err := json.NewDecoder(resp.Body).Decode(&rating); err != nil {
		return nil, err
	}

	return &rating, nil
}

func (s *RatingService) List(ctx context.Context, trialID string, opts ...RequestOption) ([]Rating, error) {
	cfg := newRequestConfig(append(s.Options, opts...)...)

	resp, err := cfg.do(ctx, http.MethodGet, "/trials/"+trialID+"/ratings", nil)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var ratings []Rating

	if err := json.NewDecoder(resp.Body).Decode(&ratings); err != nil {
		return nil, err
	}

	return ratings, nil
}

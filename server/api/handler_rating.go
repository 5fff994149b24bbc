package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/annikahug/cadenza/pkg/study"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) handleRatingCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TrialID string `json:"trial_id"`

		Naturalness   int `json:"naturalness"`
		Pleasantness  int `json:"pleasantness"`
		Comprehension int `json:"comprehension"`

		Comment string `json:"comment,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := h.Study.Store.Trial(r.Context(), req.TrialID); err != nil {
		if errors.Is(err, study.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	rating := &study.Rating{
		ID:      uuid.NewString(),
		TrialID: req.TrialID,

		Naturalness:   req.Naturalness,
		Pleasantness:  req.Pleasantness,
		Comprehension: req.Comprehension,

		Comment: req.Comment,

		Created: time.Now().UTC(),
	}

	if err := h.Study.Store.CreateRating(r.Context(), rating); err != nil {
		if errors.Is(err, study.ErrScale) {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, newRating(rating))
}

func (h *Handler) handleRatings(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ratings, err := h.Study.Store.Ratings(r.Context(), id)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	result := []Rating{}

	for _, rating := range ratings {
		result = append(result, newRating(rating))
	}

	writeJson(w, result)
}

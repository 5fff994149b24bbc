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

func (h *Handler) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Participant string `json:"participant"`
	}

	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	count, err := h.Study.Store.SessionCount(r.Context())

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	session := &study.Session{
		ID:          uuid.NewString(),
		Participant: req.Participant,

		Conditions: study.ConditionOrder(count),

		Created: time.Now().UTC(),
	}

	if err := h.Study.Store.CreateSession(r.Context(), session); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, newSession(session))
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.Study.Store.Session(r.Context(), id)

	if err != nil {
		if errors.Is(err, study.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	trials, err := h.Study.Store.Trials(r.Context(), id)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	result := newSession(session)

	for _, t := range trials {
		result.Trials = append(result.Trials, newTrial(t))
	}

	writeJson(w, result)
}

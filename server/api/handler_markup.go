package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/annikahug/cadenza/pkg/markup"
)

func (h *Handler) handleMarkup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text  string `json:"text"`
		Marks []Mark `json:"marks,omitempty"`

		Voice    string `json:"voice,omitempty"`
		Language string `json:"language,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	marks, err := convertMarks(req.Marks)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	voice := req.Voice

	if voice == "" {
		voice = h.Study.Voice
	}

	language := req.Language

	if language == "" {
		language = h.Study.Language
	}

	document, err := markup.Compile(req.Text, marks, voice, language)

	if err != nil {
		if errors.Is(err, markup.ErrOverlap) || errors.Is(err, markup.ErrRange) {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, map[string]any{
		"document": document,
		"marks":    len(marks),
	})
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/annikahug/cadenza/pkg/markup"
	"github.com/annikahug/cadenza/pkg/provider"
	"github.com/annikahug/cadenza/pkg/study"
)

func (h *Handler) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text  string `json:"text"`
		Marks []Mark `json:"marks,omitempty"`

		Condition string `json:"condition,omitempty"`

		Voice    string `json:"voice,omitempty"`
		Language string `json:"language,omitempty"`
		Format   string `json:"format,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	condition := study.ConditionPlain

	if req.Condition != "" {
		parsed, err := study.ParseCondition(req.Condition)

		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		condition = parsed
	}

	voice := req.Voice

	if voice == "" {
		voice = h.Study.Voice
	}

	language := req.Language

	if language == "" {
		language = h.Study.Language
	}

	input := req.Text

	options := &provider.SynthesizeOptions{
		Voice:    voice,
		Language: language,

		Format: req.Format,
	}

	model := h.Study.PlainSynthesizer

	// the prosody conditions synthesize a compiled markup document; the
	// tone bed for condition C is fetched separately via /tone
	if condition != study.ConditionPlain {
		marks, err := convertMarks(req.Marks)

		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
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

		input = document
		options.Markup = true

		model = h.Study.MarkupSynthesizer
	}

	synthesizer, err := h.Synthesizer(model)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	synthesis, err := synthesizer.Synthesize(r.Context(), input, options)

	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	w.Header().Set("Content-Type", synthesis.ContentType)
	w.Write(synthesis.Content)
}

package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/annikahug/cadenza/pkg/provider"
	"github.com/annikahug/cadenza/pkg/study"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) handleTrialCreate(w http.ResponseWriter, r *http.Request) {
	req, err := h.readTrialRequest(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	condition, err := study.ParseCondition(req.Condition)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := h.Study.Store.Session(r.Context(), req.SessionID); err != nil {
		if errors.Is(err, study.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	describer, err := h.Describer(req.Model)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	description, err := describer.Describe(r.Context(), provider.DescribeInput{
		Image:  req.Image,
		Prompt: req.Prompt,
	}, nil)

	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	trial := &study.Trial{
		ID:        uuid.NewString(),
		SessionID: req.SessionID,

		Image:     req.Image.Name,
		Condition: condition,

		Description: description.Text,

		Created: time.Now().UTC(),
	}

	if err := h.Study.Store.CreateTrial(r.Context(), trial); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, newTrial(trial))
}

func (h *Handler) handleTrial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	trial, err := h.Study.Store.Trial(r.Context(), id)

	if err != nil {
		if errors.Is(err, study.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, newTrial(trial))
}

type trialRequest struct {
	SessionID string
	Condition string

	Model  string
	Prompt string

	Image *provider.File
}

func (h *Handler) readTrialRequest(r *http.Request) (*trialRequest, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, header, err := r.FormFile("file")

		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(file)

		if err != nil {
			return nil, err
		}

		return &trialRequest{
			SessionID: r.FormValue("session"),
			Condition: r.FormValue("condition"),

			Model:  r.FormValue("model"),
			Prompt: r.FormValue("prompt"),

			Image: &provider.File{
				Name: header.Filename,

				Content:     data,
				ContentType: header.Header.Get("Content-Type"),
			},
		}, nil
	}

	var req struct {
		SessionID string `json:"session_id"`
		Condition string `json:"condition"`

		Model  string `json:"model,omitempty"`
		Prompt string `json:"prompt,omitempty"`

		Name        string `json:"name,omitempty"`
		Image       string `json:"image"`
		ContentType string `json:"content_type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(req.Image)

	if err != nil {
		return nil, err
	}

	return &trialRequest{
		SessionID: req.SessionID,
		Condition: req.Condition,

		Model:  req.Model,
		Prompt: req.Prompt,

		Image: &provider.File{
			Name: req.Name,

			Content:     data,
			ContentType: req.ContentType,
		},
	}, nil
}

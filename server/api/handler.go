package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/annikahug/cadenza/config"
	"github.com/annikahug/cadenza/pkg/provider"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/sessions", h.handleSessionCreate)
	r.Get("/sessions/{id}", h.handleSession)

	r.Post("/trials", h.handleTrialCreate)
	r.Get("/trials/{id}", h.handleTrial)
	r.Get("/trials/{id}/ratings", h.handleRatings)

	r.Post("/markup", h.handleMarkup)
	r.Post("/synthesize", h.handleSynthesize)

	r.Get("/tone", h.handleTone)

	r.Post("/ratings", h.handleRatingCreate)

	r.Get("/instructions", h.handleInstructions)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}

func writeUpstreamError(w http.ResponseWriter, err error) {
	var upstream *provider.UpstreamError

	if errors.As(err, &upstream) {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	writeError(w, http.StatusInternalServerError, err)
}

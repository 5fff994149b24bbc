package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/annikahug/cadenza/pkg/tone"
)

const defaultToneDuration = 5 * time.Second

func (h *Handler) handleTone(w http.ResponseWriter, r *http.Request) {
	duration := defaultToneDuration

	if val := r.URL.Query().Get("duration"); val != "" {
		ms, err := strconv.Atoi(val)

		if err != nil || ms < 0 {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		duration = time.Duration(ms) * time.Millisecond
	}

	generator := tone.NewGenerator()

	if h.Study.ToneFrequency > 0 {
		generator.Frequency = h.Study.ToneFrequency
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.Write(generator.Generate(duration))
}

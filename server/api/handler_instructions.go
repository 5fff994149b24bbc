package api

import (
	"bytes"
	"net/http"
	"os"

	"github.com/yuin/goldmark"
)

func (h *Handler) handleInstructions(w http.ResponseWriter, r *http.Request) {
	if h.Study.Instructions == "" {
		writeError(w, http.StatusNotFound, nil)
		return
	}

	data, err := os.ReadFile(h.Study.Instructions)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	var buf bytes.Buffer

	if err := goldmark.Convert(data, &buf); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/passa-a-bola/platform/services"
)

type CopaHandler struct {
	copaService *services.CopaService
}

func NewCopaHandler(cs *services.CopaService) *CopaHandler {
	return &CopaHandler{copaService: cs}
}

func (h *CopaHandler) Get(w http.ResponseWriter, r *http.Request) {
	body, err := h.copaService.Get(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Replace swaps the whole copa document. The body is stored as-is, so the
// admin UI owns its shape.
func (h *CopaHandler) Replace(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.copaService.Replace(r.Context(), json.RawMessage(body)); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

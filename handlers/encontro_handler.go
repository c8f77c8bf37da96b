package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/passa-a-bola/platform/services"
)

type EncontroHandler struct {
	encontroService *services.EncontroService
}

func NewEncontroHandler(es *services.EncontroService) *EncontroHandler {
	return &EncontroHandler{encontroService: es}
}

func (h *EncontroHandler) Get(w http.ResponseWriter, r *http.Request) {
	body, err := h.encontroService.Get(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Update merges the request body into the stored meetup document, so an
// admin can change just the venue or just the date.
func (h *EncontroHandler) Update(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	merged, err := h.encontroService.MergeUpdate(r.Context(), json.RawMessage(patch))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(merged)
}

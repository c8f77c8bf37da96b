package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/passa-a-bola/platform/services"
)

type PeneirasHandler struct {
	peneirasService *services.PeneirasService
}

func NewPeneirasHandler(ps *services.PeneirasService) *PeneirasHandler {
	return &PeneirasHandler{peneirasService: ps}
}

func (h *PeneirasHandler) List(w http.ResponseWriter, r *http.Request) {
	body, err := h.peneirasService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *PeneirasHandler) Replace(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.peneirasService.Replace(r.Context(), json.RawMessage(body)); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/passa-a-bola/platform/services"
)

type JogadoraHandler struct {
	jogadoraService *services.JogadoraService
}

func NewJogadoraHandler(js *services.JogadoraService) *JogadoraHandler {
	return &JogadoraHandler{jogadoraService: js}
}

func (h *JogadoraHandler) List(w http.ResponseWriter, r *http.Request) {
	jogadoras, err := h.jogadoraService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"jogadoras": jogadoras}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *JogadoraHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jogadoraID")
	if id == "" {
		badRequestResponse(w, r, errors.New("missing jogadora id"))
		return
	}

	jogadora, err := h.jogadoraService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"jogadora": jogadora}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *JogadoraHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.JogadoraInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	jogadora, err := h.jogadoraService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"jogadora": jogadora}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *JogadoraHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jogadoraID")
	if id == "" {
		badRequestResponse(w, r, errors.New("missing jogadora id"))
		return
	}

	var input services.JogadoraInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	jogadora, err := h.jogadoraService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"jogadora": jogadora}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *JogadoraHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jogadoraID")
	if id == "" {
		badRequestResponse(w, r, errors.New("missing jogadora id"))
		return
	}

	if err := h.jogadoraService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

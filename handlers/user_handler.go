package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/passa-a-bola/platform/middleware"
	"github.com/passa-a-bola/platform/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(us *services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// Me returns the authenticated user's own account.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	user, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateProfile renames the authenticated user's account; a linked
// jogadora profile is renamed with it.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input struct {
		Name string `json:"nome"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	user, err := h.userService.UpdateProfileName(r.Context(), userID, input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListNonJogadoras lists the accounts an admin can still promote.
func (h *UserHandler) ListNonJogadoras(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListNonJogadoras(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"usuarios": users}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) MakeJogadora(w http.ResponseWriter, r *http.Request) {
	jogadora, err := h.userService.PromoteToJogadora(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"jogadora": jogadora}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.PromoteToAdmin(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

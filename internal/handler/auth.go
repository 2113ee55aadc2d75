package handler

import (
	"errors"
	"net/http"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/apperrors"
)

// Signup handles user registration
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.svc.Signup(r.Context(), req.Username, req.Password, req.Email)
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		h.respondMessage(w, http.StatusBadRequest, "Username and password are required")
	case errors.Is(err, apperrors.ErrUsernameTaken):
		h.respondMessage(w, http.StatusBadRequest, "User already exists")
	case err != nil:
		h.serverError(w, err)
	default:
		h.respondJSON(w, http.StatusCreated, map[string]string{
			"message": "User registered successfully",
			"id":      user.ID,
		})
	}
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		h.respondMessage(w, http.StatusBadRequest, "Invalid credentials")
	case err != nil:
		h.serverError(w, err)
	default:
		h.respondJSON(w, http.StatusOK, map[string]string{
			"token":    token,
			"username": req.Username,
		})
	}
}

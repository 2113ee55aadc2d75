package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/apperrors"
)

// ListProducts returns the static catalog
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.svc.Products(r.Context()))
}

// GetCart returns the authenticated user's cart
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, h.svc.GetCart(r.Context(), userID))
}

// AddToCart adds a product snapshot to the authenticated user's cart
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID int64 `json:"productId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.svc.AddToCart(r.Context(), userID, req.ProductID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		h.respondMessage(w, http.StatusNotFound, "Product not found")
	case err != nil:
		h.serverError(w, err)
	default:
		h.respondJSON(w, http.StatusOK, cart)
	}
}

// RemoveFromCart removes an item from the authenticated user's cart
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}
	cartItemID := mux.Vars(r)["cartItemId"]

	h.respondJSON(w, http.StatusOK, h.svc.RemoveFromCart(r.Context(), userID, cartItemID))
}

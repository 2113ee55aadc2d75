// Package handler exposes the HTTP surface. Handlers decode JSON bodies,
// call the service and map its errors to status codes. Unexpected errors
// are logged and answered with a generic 500 body, never with internal
// diagnostic detail.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/service"
)

type Handler struct {
	svc     *service.Service
	log     *logrus.Logger
	baseURL string
}

func NewHandler(svc *service.Service, log *logrus.Logger, baseURL string) *Handler {
	return &Handler{svc: svc, log: log, baseURL: baseURL}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// serverError answers any unanticipated failure with a generic body.
func (h *Handler) serverError(w http.ResponseWriter, err error) {
	h.log.Errorf("Internal error: %v", err)
	h.respondMessage(w, http.StatusInternalServerError, "Internal server error")
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

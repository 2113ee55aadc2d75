package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/middleware"
)

// NewRouter registers the full HTTP surface. Public routes are open;
// everything on the protected subrouter passes the token middleware first.
func NewRouter(h *Handler, jwtSecret []byte, log *logrus.Logger) *mux.Router {
	r := mux.NewRouter()

	// Service banner and health check
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		h.respondJSON(w, http.StatusOK, map[string]string{
			"message": "Drobo API Server",
			"version": "1.0.0",
			"status":  "running",
		})
	}).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		h.respondMessage(w, http.StatusOK, "Server is running")
	}).Methods("GET")

	// Public routes
	r.HandleFunc("/signup", h.Signup).Methods("POST")
	r.HandleFunc("/register", h.Signup).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/posts", h.ListPosts).Methods("GET")
	r.HandleFunc("/posts/{postId}", h.GetPost).Methods("GET")
	r.HandleFunc("/posts/{postId}/comments", h.ListComments).Methods("GET")
	r.HandleFunc("/products", h.ListProducts).Methods("GET")
	r.HandleFunc("/feed", h.Feed).Methods("GET")

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(jwtSecret, log))
	authRouter.HandleFunc("/posts", h.CreatePost).Methods("POST")
	authRouter.HandleFunc("/posts/{postId}/comments", h.CreateComment).Methods("POST")
	authRouter.HandleFunc("/cart", h.GetCart).Methods("GET")
	authRouter.HandleFunc("/cart", h.AddToCart).Methods("POST")
	authRouter.HandleFunc("/cart/{cartItemId}", h.RemoveFromCart).Methods("DELETE")

	return r
}

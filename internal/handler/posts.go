package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/apperrors"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/feed"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/middleware"
)

// identity extracts the authenticated user id set by the auth middleware.
// Protected routes always pass the middleware first, so a miss here means
// a wiring mistake; it is answered like a missing credential.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.respondMessage(w, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return userID, true
}

// CreatePost handles post creation for the authenticated user
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.svc.CreatePost(r.Context(), userID, req.Title, req.Content)
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		h.respondMessage(w, http.StatusBadRequest, "Title and content are required")
	case err != nil:
		h.serverError(w, err)
	default:
		h.respondJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Post created successfully",
			"post":    post,
		})
	}
}

// ListPosts returns all posts with authors and comments populated
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Posts retrieved successfully",
		"count":   len(posts),
		"posts":   posts,
	})
}

// GetPost returns a single post with authors and comments populated
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	post, err := h.svc.GetPost(r.Context(), postID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		h.respondMessage(w, http.StatusNotFound, "Post not found")
	case err != nil:
		h.serverError(w, err)
	default:
		h.respondJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Post retrieved successfully",
			"post":    post,
		})
	}
}

// CreateComment adds a comment to a post for the authenticated user
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}
	postID := mux.Vars(r)["postId"]

	var req struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.svc.CreateComment(r.Context(), userID, postID, req.Content)
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		h.respondMessage(w, http.StatusBadRequest, "Comment content is required")
	case errors.Is(err, apperrors.ErrNotFound):
		h.respondMessage(w, http.StatusNotFound, "Post not found")
	case err != nil:
		h.serverError(w, err)
	default:
		h.respondJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Comment added successfully",
			"comment": comment,
		})
	}
}

// ListComments returns a post's comments, newest first
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	comments, err := h.svc.ListComments(r.Context(), postID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		h.respondMessage(w, http.StatusNotFound, "Post not found")
	case err != nil:
		h.serverError(w, err)
	default:
		h.respondJSON(w, http.StatusOK, map[string]interface{}{
			"message":  "Comments retrieved successfully",
			"count":    len(comments),
			"comments": comments,
		})
	}
}

// Feed serves the posts as an RSS 2.0 feed
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}

	out, err := feed.Build(posts, h.baseURL)
	if err != nil {
		h.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		h.log.Errorf("Failed to write feed: %v", err)
	}
}

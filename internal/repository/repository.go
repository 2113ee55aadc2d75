// Package repository provides the storage layer: users, posts and comments
// behind the Store interface (in-memory or Postgres), plus the purely
// in-memory cart store and the static product catalog.
package repository

import (
	"context"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/models"
)

// Store provides persistence for users, posts and comments.
//
// CreateComment must be atomic: the comment record and the append of its id
// to the post's comment list either both happen or neither does, and two
// concurrent creations against the same post must never lose an append.
type Store interface {
	// CreateUser stores a new user, filling in user.ID and user.CreatedAt.
	// Returns apperrors.ErrUsernameTaken if the username already exists.
	CreateUser(ctx context.Context, user *models.User) error
	// FindUserByUsername returns apperrors.ErrNotFound if no user matches.
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	// FindUserByID returns apperrors.ErrNotFound if no user matches.
	FindUserByID(ctx context.Context, id string) (*models.User, error)

	// CreatePost stores a new post, filling in post.ID and post.CreatedAt.
	CreatePost(ctx context.Context, post *models.Post) error
	// FindPostByID returns apperrors.ErrNotFound if no post matches.
	FindPostByID(ctx context.Context, id string) (*models.Post, error)
	// ListPosts returns all posts ordered by creation time, newest first.
	ListPosts(ctx context.Context) ([]*models.Post, error)

	// CreateComment stores a new comment and appends its id to the parent
	// post's comment list in one atomic step, filling in comment.ID and
	// comment.CreatedAt. Returns apperrors.ErrNotFound if the post does
	// not exist.
	CreateComment(ctx context.Context, comment *models.Comment) error
	// CommentsByPost returns the post's comments in append order (oldest
	// first), matching the order of the post's comment id list. Returns
	// apperrors.ErrNotFound if the post does not exist.
	CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error)

	// Counts reports the number of stored users, posts and comments.
	Counts(ctx context.Context) (users, posts, comments int, err error)
}

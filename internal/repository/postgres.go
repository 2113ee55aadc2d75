package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/apperrors"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/models"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// PostgresStore is the Store implementation backed by Postgres (see
// schema.sql). The post's comment list is a text[] column appended with
// array_append, so the comment insert and the list update commit together.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore initializes a Postgres-backed store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateUser creates a new user in the database
func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.NewString()
	query := `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := s.db.QueryRowContext(ctx, query, user.ID, user.Username, user.Email, user.PasswordHash).
		Scan(&user.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return apperrors.ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByUsername retrieves a user by username
func (s *PostgresStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1`
	err := s.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserByID retrieves a user by id
func (s *PostgresStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE id = $1`
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreatePost creates a new post with an empty comment list
func (s *PostgresStore) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = uuid.NewString()
	post.CommentIDs = []string{}
	query := `
		INSERT INTO posts (id, title, content, author_id, comment_ids, created_at)
		VALUES ($1, $2, $3, $4, '{}', CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := s.db.QueryRowContext(ctx, query, post.ID, post.Title, post.Content, post.AuthorID).
		Scan(&post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// FindPostByID retrieves a post by id
func (s *PostgresStore) FindPostByID(ctx context.Context, id string) (*models.Post, error) {
	post := &models.Post{}
	query := `
		SELECT id, title, content, author_id, comment_ids, created_at
		FROM posts
		WHERE id = $1`
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID, pq.Array(&post.CommentIDs), &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// ListPosts retrieves all posts, newest first
func (s *PostgresStore) ListPosts(ctx context.Context) ([]*models.Post, error) {
	query := `
		SELECT id, title, content, author_id, comment_ids, created_at
		FROM posts
		ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID,
			pq.Array(&post.CommentIDs), &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	return posts, nil
}

// CreateComment inserts the comment and appends its id to the parent post
// in one transaction. array_append updates the list in place on the server,
// so concurrent creations against the same post serialize on the row and
// no append is lost.
func (s *PostgresStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	comment.ID = uuid.NewString()

	res, err := tx.ExecContext(ctx,
		`UPDATE posts SET comment_ids = array_append(comment_ids, $1) WHERE id = $2`,
		comment.ID, comment.PostID)
	if err != nil {
		return fmt.Errorf("failed to append comment to post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check post update: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}

	query := `
		INSERT INTO comments (id, content, author_id, post_id, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING created_at`
	if err := tx.QueryRowContext(ctx, query,
		comment.ID, comment.Content, comment.AuthorID, comment.PostID).Scan(&comment.CreatedAt); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit comment: %w", err)
	}
	return nil
}

// CommentsByPost retrieves a post's comments in append order
func (s *PostgresStore) CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	query := `
		SELECT id, content, author_id, post_id, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC`
	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.Content, &c.AuthorID, &c.PostID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}
	return comments, nil
}

// Counts reports stored entity counts for the usage report
func (s *PostgresStore) Counts(ctx context.Context) (int, int, int, error) {
	var users, posts, comments int
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM posts),
			(SELECT COUNT(*) FROM comments)`
	if err := s.db.QueryRowContext(ctx, query).Scan(&users, &posts, &comments); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count entities: %w", err)
	}
	return users, posts, comments, nil
}

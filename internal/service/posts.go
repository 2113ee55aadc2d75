package service

import (
	"context"
	"fmt"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/apperrors"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/models"
)

// CreatePost creates a post authored by userID and returns it with the
// author populated.
func (s *Service) CreatePost(ctx context.Context, userID, title, content string) (*models.PostView, error) {
	if title == "" || content == "" {
		return nil, apperrors.ErrValidation
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: userID,
	}
	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.log.Infof("Post created by user %s: %s", userID, post.ID)
	return s.populatePost(ctx, post)
}

// ListPosts returns all posts, newest first, each with its author and full
// comment list populated.
func (s *Service) ListPosts(ctx context.Context) ([]*models.PostView, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*models.PostView, 0, len(posts))
	for _, post := range posts {
		view, err := s.populatePost(ctx, post)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetPost returns a single post with author and comments populated.
func (s *Service) GetPost(ctx context.Context, postID string) (*models.PostView, error) {
	post, err := s.store.FindPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.populatePost(ctx, post)
}

// CreateComment creates a comment by userID on postID. The comment record
// and the append to the post's comment list happen atomically in the store.
func (s *Service) CreateComment(ctx context.Context, userID, postID, content string) (*models.CommentView, error) {
	if content == "" {
		return nil, apperrors.ErrValidation
	}

	comment := &models.Comment{
		Content:  content,
		AuthorID: userID,
		PostID:   postID,
	}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Infof("Comment created by user %s on post %s", userID, postID)
	return s.populateComment(ctx, comment)
}

// ListComments returns a post's comments, newest first, authors populated.
func (s *Service) ListComments(ctx context.Context, postID string) ([]*models.CommentView, error) {
	comments, err := s.store.CommentsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	// The store returns append order; the listing is newest first.
	views := make([]*models.CommentView, 0, len(comments))
	for i := len(comments) - 1; i >= 0; i-- {
		view, err := s.populateComment(ctx, comments[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// populatePost resolves the post's author id and comment ids into public
// views. Nothing is written back to the store.
func (s *Service) populatePost(ctx context.Context, post *models.Post) (*models.PostView, error) {
	author, err := s.store.FindUserByID(ctx, post.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve author of post %s: %w", post.ID, err)
	}

	comments, err := s.store.CommentsByPost(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve comments of post %s: %w", post.ID, err)
	}

	views := make([]*models.CommentView, 0, len(comments))
	for _, comment := range comments {
		view, err := s.populateComment(ctx, comment)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return &models.PostView{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    author.View(),
		Comments:  views,
		CreatedAt: post.CreatedAt,
	}, nil
}

func (s *Service) populateComment(ctx context.Context, comment *models.Comment) (*models.CommentView, error) {
	author, err := s.store.FindUserByID(ctx, comment.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve author of comment %s: %w", comment.ID, err)
	}

	return &models.CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    author.View(),
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt,
	}, nil
}

package models

import "time"

// Comment is a comment on a post as stored.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView is a comment with its author populated for responses.
type CommentView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    *UserView `json:"author"`
	PostID    string    `json:"post"`
	CreatedAt time.Time `json:"created_at"`
}

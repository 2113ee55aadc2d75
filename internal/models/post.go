package models

import "time"

// Post is a blog post as stored. CommentIDs holds the ids of the post's
// comments in append order; it only ever grows, one id per created comment.
type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	CommentIDs []string  `json:"comment_ids"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostView is a post with its author and comments populated for responses.
// Population resolves stored ids into public views; nothing is written back.
type PostView struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    *UserView      `json:"author"`
	Comments  []*CommentView `json:"comments"`
	CreatedAt time.Time      `json:"created_at"`
}

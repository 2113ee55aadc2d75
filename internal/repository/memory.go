package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/apperrors"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/models"
)

// MemoryStore is a process-scoped Store. All state lives in this struct:
// it is empty at startup and lost when the process stops. Used when no
// database is configured, and by tests, which get a fresh store per case.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]*models.User    // by id
	byName   map[string]string          // username -> id
	posts    map[string]*models.Post    // by id
	comments map[string]*models.Comment // by id
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*models.User),
		byName:   make(map[string]string),
		posts:    make(map[string]*models.Post),
		comments: make(map[string]*models.Comment),
	}
}

// CreateUser stores a new user, enforcing username uniqueness.
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[user.Username]; exists {
		return apperrors.ErrUsernameTaken
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	u := *user
	s.users[u.ID] = &u
	s.byName[u.Username] = u.ID
	return nil
}

func (s *MemoryStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	u := *s.users[id]
	return &u, nil
}

func (s *MemoryStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	u := *user
	return &u, nil
}

// CreatePost stores a new post with an empty comment list.
func (s *MemoryStore) CreatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = uuid.NewString()
	post.CreatedAt = time.Now()
	post.CommentIDs = []string{}

	p := clonePost(post)
	s.posts[p.ID] = p
	return nil
}

func (s *MemoryStore) FindPostByID(ctx context.Context, id string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return clonePost(post), nil
}

// ListPosts returns all posts, newest first.
func (s *MemoryStore) ListPosts(ctx context.Context) ([]*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, clonePost(p))
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// CreateComment stores the comment and appends its id to the parent post
// under a single lock, so concurrent creations against the same post can
// never lose an append.
func (s *MemoryStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[comment.PostID]
	if !ok {
		return apperrors.ErrNotFound
	}

	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()

	c := *comment
	s.comments[c.ID] = &c
	post.CommentIDs = append(post.CommentIDs, c.ID)
	return nil
}

// CommentsByPost returns the post's comments in append order.
func (s *MemoryStore) CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	comments := make([]*models.Comment, 0, len(post.CommentIDs))
	for _, id := range post.CommentIDs {
		c := *s.comments[id]
		comments = append(comments, &c)
	}
	return comments, nil
}

func (s *MemoryStore) Counts(ctx context.Context) (int, int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.posts), len(s.comments), nil
}

func clonePost(p *models.Post) *models.Post {
	c := *p
	c.CommentIDs = append([]string(nil), p.CommentIDs...)
	return &c
}

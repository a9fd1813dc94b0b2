package blog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/VehanRajintha/vehan-dev/internal/storage"
)

const (
	postsKey = "personalBlogPosts"
	authKey  = "personalBlogAuth"
)

// ErrNotFound is returned by GetPostByID when no post has the given id.
var ErrNotFound = errors.New("post not found")

// Store is the single-user blog store. All posts live under one storage key
// as a JSON array, written back whole on every mutation. The read-modify-write
// in SavePost/DeletePost is not atomic across concurrent writers; with one
// user on one device that race is accepted rather than locked against.
type Store struct {
	storage  storage.Storage
	password string
	log      *zap.Logger
	now      func() time.Time
}

// NewStore builds a Store over the given storage. password is the shared
// secret for the UX gate.
func NewStore(s storage.Storage, password string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{storage: s, password: password, log: log, now: time.Now}
}

// IsAuthenticated reports whether the gate has been passed. A missing or
// unreadable flag simply means "not authenticated".
func (s *Store) IsAuthenticated() bool {
	v, ok := s.storage.Get(authKey)
	return ok && v == "true"
}

// Authenticate compares the input against the shared secret. On a match the
// flag is persisted; on a mismatch nothing changes.
func (s *Store) Authenticate(password string) bool {
	if password != s.password {
		return false
	}
	if err := s.storage.Set(authKey, "true"); err != nil {
		s.log.Warn("persisting auth flag failed", zap.Error(err))
		return false
	}
	return true
}

// Logout clears the authenticated flag unconditionally.
func (s *Store) Logout() {
	if err := s.storage.Remove(authKey); err != nil {
		s.log.Warn("clearing auth flag failed", zap.Error(err))
	}
}

// GetAllPosts returns every post sorted by CreatedAt descending. Absent or
// unparseable stored data yields an empty slice, never an error: a corrupt
// read-side cache should not take the page down.
func (s *Store) GetAllPosts() []Post {
	raw, ok := s.storage.Get(postsKey)
	if !ok {
		return []Post{}
	}
	var posts []Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		s.log.Error("stored posts unparseable, treating as empty", zap.Error(err))
		return []Post{}
	}
	sort.Slice(posts, func(i, j int) bool {
		ti, erri := time.Parse(time.RFC3339, posts[i].CreatedAt)
		tj, errj := time.Parse(time.RFC3339, posts[j].CreatedAt)
		if erri == nil && errj == nil {
			return ti.After(tj)
		}
		// Timestamps that don't parse still get a total order.
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	return posts
}

// GetPostByID finds a post by id or returns ErrNotFound.
func (s *Store) GetPostByID(id string) (Post, error) {
	for _, p := range s.GetAllPosts() {
		if p.ID == id {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// SavePost inserts the post, or replaces the existing post with the same id.
// On replacement UpdatedAt is stamped to now, overriding whatever the caller
// supplied. Write failures are returned: a lost save must be visible.
func (s *Store) SavePost(post Post) error {
	posts := s.GetAllPosts()
	replaced := false
	for i := range posts {
		if posts[i].ID == post.ID {
			post.UpdatedAt = s.now().UTC().Format(time.RFC3339)
			posts[i] = post
			replaced = true
			break
		}
	}
	if !replaced {
		posts = append(posts, post)
	}
	return s.writeAll(posts)
}

// DeletePost removes the post with the given id and persists the remainder.
// Deleting an id that does not exist is a no-op.
func (s *Store) DeletePost(id string) error {
	posts := s.GetAllPosts()
	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.writeAll(kept)
}

func (s *Store) writeAll(posts []Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("serialize posts: %w", err)
	}
	if err := s.storage.Set(postsKey, string(data)); err != nil {
		return fmt.Errorf("write posts: %w", err)
	}
	return nil
}

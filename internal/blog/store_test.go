package blog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VehanRajintha/vehan-dev/internal/storage"
)

const testSecret = "SNK123"

func newTestStore() *Store {
	return NewStore(storage.NewMemory(), testSecret, nil)
}

func TestAuthenticateFlow(t *testing.T) {
	s := newTestStore()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.Authenticate("wrong"))
	assert.False(t, s.IsAuthenticated())

	assert.True(t, s.Authenticate(testSecret))
	assert.True(t, s.IsAuthenticated())

	// A failed attempt does not revoke an existing session.
	assert.False(t, s.Authenticate("wrong"))
	assert.True(t, s.IsAuthenticated())

	s.Logout()
	assert.False(t, s.IsAuthenticated())
}

func TestGetAllPostsEmptyStorage(t *testing.T) {
	s := newTestStore()
	assert.Empty(t, s.GetAllPosts())
}

func TestGetAllPostsCorruptDataTreatedAsEmpty(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Set("personalBlogPosts", "{not json"))
	s := NewStore(mem, testSecret, nil)
	assert.Empty(t, s.GetAllPosts())
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	s := newTestStore()
	post := Post{
		ID:        NewPostID(),
		Title:     "First",
		Content:   "hello",
		Images:    []string{"aGVsbG8="},
		CreatedAt: "2025-03-10T12:00:00Z",
	}
	require.NoError(t, s.SavePost(post))

	got, err := s.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.Content, got.Content)
	assert.Equal(t, post.Images, got.Images)
	assert.Equal(t, post.CreatedAt, got.CreatedAt)
	assert.Empty(t, got.UpdatedAt, "first save must not stamp UpdatedAt")

	all := s.GetAllPosts()
	require.Len(t, all, 1)
	assert.Equal(t, post.ID, all[0].ID)
}

func TestSaveExistingStampsUpdatedAt(t *testing.T) {
	s := newTestStore()
	fixed := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	post := Post{ID: "post_1_a", Title: "v1", CreatedAt: "2025-05-01T12:00:00Z"}
	require.NoError(t, s.SavePost(post))

	post.Title = "v2"
	post.UpdatedAt = "caller-supplied-garbage"
	require.NoError(t, s.SavePost(post))

	got, err := s.GetPostByID("post_1_a")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Title)
	assert.Equal(t, fixed.Format(time.RFC3339), got.UpdatedAt)
	assert.Equal(t, "2025-05-01T12:00:00Z", got.CreatedAt)

	// Replacement, not duplication.
	assert.Len(t, s.GetAllPosts(), 1)
}

func TestGetAllPostsSortedDescending(t *testing.T) {
	s := newTestStore()
	dates := []string{
		"2024-01-01T12:00:00Z",
		"2025-08-30T12:00:00Z",
		"2023-11-11T12:00:00Z",
		"2025-02-14T12:00:00Z",
	}
	for i, d := range dates {
		require.NoError(t, s.SavePost(Post{ID: NewPostID() + string(rune('a'+i)), CreatedAt: d}))
	}

	all := s.GetAllPosts()
	require.Len(t, all, len(dates))
	for i := 1; i < len(all); i++ {
		prev, err := time.Parse(time.RFC3339, all[i-1].CreatedAt)
		require.NoError(t, err)
		cur, err := time.Parse(time.RFC3339, all[i].CreatedAt)
		require.NoError(t, err)
		assert.False(t, prev.Before(cur), "posts must be newest first")
	}
}

func TestDeletePost(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.SavePost(Post{ID: "post_1_a", CreatedAt: "2025-01-01T12:00:00Z"}))
	require.NoError(t, s.SavePost(Post{ID: "post_2_b", CreatedAt: "2025-01-02T12:00:00Z"}))

	require.NoError(t, s.DeletePost("post_1_a"))
	_, err := s.GetPostByID("post_1_a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.GetAllPosts(), 1)

	// Deleting a nonexistent id is a no-op, not an error.
	require.NoError(t, s.DeletePost("post_9_z"))
	assert.Len(t, s.GetAllPosts(), 1)
}

// failingStorage accepts reads but refuses writes, standing in for a full
// quota or broken disk.
type failingStorage struct {
	storage.Storage
}

func (f failingStorage) Set(key, value string) error {
	return errors.New("quota exceeded")
}

func TestWriteFailuresPropagate(t *testing.T) {
	s := NewStore(failingStorage{storage.NewMemory()}, testSecret, nil)

	err := s.SavePost(Post{ID: "post_1_a", CreatedAt: "2025-01-01T12:00:00Z"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")

	assert.Error(t, s.DeletePost("post_1_a"))
}

func TestNewPostIDShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := NewPostID()
		assert.True(t, strings.HasPrefix(id, "post_"))
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

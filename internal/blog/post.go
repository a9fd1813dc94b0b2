// Package blog implements the private blog: a password-gated CRUD store for
// posts kept in a small key-value Storage. The gate is a single shared secret
// compared verbatim — it keeps casual visitors out of a personal notes page
// and is NOT an access-control boundary; anyone with the binary or config can
// read the secret.
package blog

import (
	"fmt"
	"math/rand"
	"time"
)

// Post is one private blog entry. Images are embedded as base64 strings
// directly in the record; there is no separate blob store.
type Post struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	CreatedAt string   `json:"createdAt"`           // ISO-8601
	UpdatedAt string   `json:"updatedAt,omitempty"` // set on every save after creation
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewPostID generates a collision-resistant id from the current epoch
// milliseconds plus a short random suffix, e.g. post_1756600000000_k3f9a2m1x.
func NewPostID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("post_%d_%s", time.Now().UnixMilli(), suffix)
}

package blog

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxImageBytes is the per-image cap for embedded uploads. The store itself
// has no size limit; oversized images are rejected here, before a post ever
// reaches it.
const MaxImageBytes = 5 << 20

// Handler exposes the store over HTTP for the private blog page.
type Handler struct {
	store *Store
	log   *zap.Logger
}

func NewHandler(store *Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: store, log: log}
}

// Register mounts the blog API under /api/blog.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/api/blog")
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)

	authed := g.Group("")
	authed.Use(h.requireAuth())
	authed.GET("/posts", h.listPosts)
	authed.GET("/posts/:id", h.getPost)
	authed.POST("/posts", h.savePost)
	authed.DELETE("/posts/:id", h.deletePost)
}

func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.store.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.Next()
	}
}

func (h *Handler) login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !h.store.Authenticate(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

func (h *Handler) logout(c *gin.Context) {
	h.store.Logout()
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

func (h *Handler) listPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAllPosts())
}

func (h *Handler) getPost(c *gin.Context) {
	post, err := h.store.GetPostByID(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// savePost accepts a full post record. A missing id means a new post. Images
// over MaxImageBytes are dropped; the accepted ones keep their order. The
// response reports how many were rejected so the editor can tell the user.
func (h *Handler) savePost(c *gin.Context) {
	var post Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post"})
		return
	}
	if post.ID == "" {
		post.ID = NewPostID()
	}
	if post.CreatedAt == "" {
		post.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	} else if d, err := time.Parse("2006-01-02", post.CreatedAt); err == nil {
		// Date-only input is pinned to noon so a timezone shift cannot roll
		// the post into the neighboring day.
		post.CreatedAt = d.Add(12 * time.Hour).UTC().Format(time.RFC3339)
	}

	accepted := post.Images[:0]
	rejected := 0
	for _, img := range post.Images {
		if imageSize(img) > MaxImageBytes {
			rejected++
			continue
		}
		accepted = append(accepted, img)
	}
	post.Images = accepted

	if err := h.store.SavePost(post); err != nil {
		h.log.Error("saving post failed", zap.String("id", post.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": post.ID, "rejectedImages": rejected})
}

func (h *Handler) deletePost(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeletePost(id); err != nil {
		h.log.Error("deleting post failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// imageSize returns the decoded byte size of a base64 image, accepting both
// bare base64 and data: URIs.
func imageSize(img string) int {
	if i := strings.IndexByte(img, ','); i >= 0 && strings.HasPrefix(img, "data:") {
		img = img[i+1:]
	}
	return base64.StdEncoding.DecodedLen(len(img))
}

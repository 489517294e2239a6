package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulse/middleware"
	"pulse/store"
)

type PostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"`
}

// published defaults to true when the field is omitted.
func (r *PostRequest) published() bool {
	if r.Published == nil {
		return true
	}
	return *r.Published
}

// ListPosts returns all posts matching the title search, each with its vote
// count, paginated by limit/skip.
func (h *Handler) ListPosts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
		return
	}
	search := c.Query("search")

	posts, err := h.Posts.List(c.Request.Context(), search, limit, skip)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost persists a new post owned by the authenticated user.
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	post, err := h.Posts.Create(c.Request.Context(), req.Title, req.Content, req.published(), user.ID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost returns a single post with its vote count.
func (h *Handler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := h.Posts.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Post with id %d was not found", id)})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost overwrites a post's mutable fields. Only the owner may update.
func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	post, err := h.Posts.Update(c.Request.Context(), uint(id), req.Title, req.Content, req.published(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Post with id %d does not exist", id)})
		case errors.Is(err, store.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to perform requested action"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post permanently. Only the owner may delete.
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.Posts.Delete(c.Request.Context(), uint(id), user.ID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Post with id %d does not exist", id)})
		case errors.Is(err, store.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to perform requested action"})
		default:
			internalError(c, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse/middleware"
	"pulse/store"
)

type VoteRequest struct {
	PostID uint `json:"post_id" binding:"required"`
	Dir    *int `json:"dir" binding:"required"`
}

// Vote toggles the caller's vote on a post: dir=1 adds, dir=0 removes.
// Redundant operations fail loudly instead of no-opping.
func (h *Handler) Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.Dir != 0 && *req.Dir != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dir must be 0 or 1"})
		return
	}

	user := middleware.CurrentUser(c)

	if *req.Dir == 1 {
		err := h.Votes.Add(c.Request.Context(), user.ID, req.PostID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Post with id %d does not exist", req.PostID)})
			case errors.Is(err, store.ErrAlreadyVoted):
				c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("User %d has already voted on post %d", user.ID, req.PostID)})
			default:
				internalError(c, err)
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "successfully added vote"})
		return
	}

	if err := h.Votes.Remove(c.Request.Context(), user.ID, req.PostID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vote does not exist"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "successfully deleted vote"})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse/auth"
	"pulse/store"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the credentials and issues a bearer token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid Credentials"})
			return
		}
		internalError(c, err)
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid Credentials"})
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

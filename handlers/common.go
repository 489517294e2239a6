package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse/auth"
	"pulse/store"
)

// Handler bundles the stores and token service the endpoints depend on.
type Handler struct {
	Users  *store.UserStore
	Posts  *store.PostStore
	Votes  *store.VoteStore
	Tokens *auth.TokenService
}

func New(users *store.UserStore, posts *store.PostStore, votes *store.VoteStore, tokens *auth.TokenService) *Handler {
	return &Handler{Users: users, Posts: posts, Votes: votes, Tokens: tokens}
}

// internalError logs the underlying cause and returns a generic 500 body.
func internalError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pulse/auth"
	"pulse/models"
	"pulse/store"
)

// userKey is the gin context key the resolved identity is stored under.
const userKey = "currentUser"

// CurrentUser returns the identity resolved by RequireAuth. It must only be
// called from handlers registered behind the middleware.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(userKey).(models.User)
}

// RequireAuth extracts the bearer token, verifies it and resolves it to a
// concrete user before any business logic runs. Missing, malformed or
// expired tokens, and tokens referencing a deleted user, all abort with 401.
func RequireAuth(tokens *auth.TokenService, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip middleware for OPTIONS requests (CORS preflight)
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Fall back to the query parameter
			token := c.Query("token")
			if token == "" {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":   "Authentication required",
					"message": "No authorization token provided",
				})
				c.Abort()
				return
			}
			authHeader = "Bearer " + token
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid authorization header",
				"message": "Format should be: Bearer <token>",
			})
			c.Abort()
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			message := "Token validation failed"
			if errors.Is(err, auth.ErrExpiredCredentials) {
				message = "Token has expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": message,
			})
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": "User no longer exists",
			})
			c.Abort()
			return
		}

		c.Set(userKey, *user)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// tokenVerifier is satisfied by *auth.TokenManager.
type tokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth requires "Authorization: Bearer <token>" and sets "userID" in the gin
// context. Missing header, wrong scheme, and invalid token all produce the
// same 401 body so the response leaks nothing about which check failed.
func Auth(tokens tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortInvalidToken(c)
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")
		if rawToken == "" {
			abortInvalidToken(c)
			return
		}

		userID, err := tokens.Verify(rawToken)
		if err != nil {
			abortInvalidToken(c)
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func abortInvalidToken(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status": "error",
		"error":  gin.H{"code": "INVALID_TOKEN", "message": "Invalid token"},
	})
}

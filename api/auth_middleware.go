package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/auth"
)

// TokenAuth verifies the identity provider's bearer token and stores the
// authenticated user in the request context.
func TokenAuth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")

		if !found || len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		user, err := verifier.Verify(token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("user", user)
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(auth.User)

		if !user.Admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerToken extracts the token from the Authorization header. Returns an
// empty string when the header is missing or not a Bearer credential; token
// validity itself is judged by the service that consumes it.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

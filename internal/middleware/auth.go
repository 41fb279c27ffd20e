package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DeviceClaims identifies the device a validated token belongs to.
type DeviceClaims struct {
	DeviceID string
}

// TokenValidator validates a device token and returns its claims.
type TokenValidator interface {
	ValidateToken(token string) (*DeviceClaims, error)
}

// DeviceAuth creates a middleware that validates device bearer tokens
// on sensor ingestion routes.
func DeviceAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("device_id", claims.DeviceID)
		c.Next()
	}
}

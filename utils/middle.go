package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			return tokenParts[1]
		}
		return ""
	}
	// Browsers send the access token as a cookie after login.
	if cookie, err := c.Cookie("accessToken"); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware verifies the JWT and sets the user context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		claims, err := VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Set("username", claims.Username)
		c.Set("user_id", claims.UserId)
		c.Next()
	}
}

// OptionalAuthMiddleware sets the user context when a valid token is present
// and lets anonymous requests through. Viewer-aware fields degrade to false
// for anonymous viewers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := VerifyToken(token); err == nil {
				c.Set("username", claims.Username)
				c.Set("user_id", claims.UserId)
			}
		}
		c.Next()
	}
}

// ViewerID returns the authenticated user ID, or 0 for anonymous viewers.
func ViewerID(c *gin.Context) uint64 {
	value, ok := c.Get("user_id")
	if !ok {
		return 0
	}
	id, _ := value.(uint64)
	return id
}

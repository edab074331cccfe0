package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated user's ID. The typed key avoids
// collisions with other context values.
const userIDKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user ID set by the auth
// middleware, checking the Gin context first and the request context second.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}

	if v, ok := c.Request.Context().Value(userIDKey).(string); ok && v != "" {
		return v, true
	}

	return "", false
}

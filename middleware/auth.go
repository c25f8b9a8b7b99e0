package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tonotes/utils"
)

const UserIDKey = "user_id"

// AuthMiddleware verifies the Bearer access token and stores the owner id
// under UserIDKey. Token issuance lives in the auth service.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			TrackError("auth")
			utils.Unauthorized(c, "Missing or invalid token")
			return
		}

		userID, err := utils.ParseAccessToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			TrackError("auth")
			utils.Unauthorized(c, "Invalid token")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated owner id set by AuthMiddleware.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	return userID, userID != ""
}

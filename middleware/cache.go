package middleware

import "github.com/gin-gonic/gin"

// NoStoreMiddleware marks responses as uncacheable. Rankings depend on the
// current time and must never be served from an intermediary cache.
func NoStoreMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "private, no-store")
		c.Next()
	}
}

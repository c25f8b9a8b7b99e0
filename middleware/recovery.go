package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tonotes/utils"
)

func EnhancedRecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("panic", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(RequestIDKey)),
					zap.Stack("stack"))
				TrackError("panic")
				utils.InternalError(c, "Internal server error")
			}
		}()
		c.Next()
	}
}

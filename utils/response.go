package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  int         `json:"-"`
	Error   bool        `json:"error"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responses
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Status: http.StatusOK,
		Data:   data,
	})
}

// Ack is the success answer of fire-and-forget endpoints.
func Ack(c *gin.Context, message string) {
	c.JSON(http.StatusOK, &Response{
		Status:  http.StatusOK,
		Message: message,
	})
}

// Error responses
func Unauthorized(c *gin.Context, message string) {
	fail(c, KindUnauthorized, message)
}

func BadRequest(c *gin.Context, message string) {
	fail(c, KindValidation, message)
}

func NotFound(c *gin.Context, message string) {
	fail(c, KindNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	fail(c, KindStoreFailure, message)
}

func fail(c *gin.Context, kind ErrorKind, message string) {
	status := statusCode(kind)
	c.AbortWithStatusJSON(status, &Response{
		Status:  status,
		Error:   true,
		Message: message,
		Code:    string(kind),
	})
}

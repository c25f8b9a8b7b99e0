package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindValidation   ErrorKind = "VALIDATION_ERROR"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindStoreFailure ErrorKind = "STORE_FAILURE"
)

// AppError is the error type returned across repository and usecase
// boundaries. Handlers turn it into a response with RespondError.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func UnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

// StoreError wraps a driver error. The cause is logged, never sent to the client.
func StoreError(message string, err error) *AppError {
	return &AppError{Kind: KindStoreFailure, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindStoreFailure for anything that is
// not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStoreFailure
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

// RespondError writes the envelope matching err's kind.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		InternalError(c, "Internal server error")
		return
	}

	switch appErr.Kind {
	case KindNotFound:
		NotFound(c, appErr.Message)
	case KindValidation:
		BadRequest(c, appErr.Message)
	case KindUnauthorized:
		Unauthorized(c, appErr.Message)
	default:
		InternalError(c, appErr.Message)
	}
}

func statusCode(kind ErrorKind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accountability-atlas/user-service/internal/model"
)

// errorBody is the uniform error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain error to its HTTP status and error code.
// Unmapped errors become an opaque 500 so storage details never leak.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorBody{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"})
	case errors.Is(err, model.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, errorBody{Code: "EMAIL_EXISTS", Message: "Email already registered"})
	case errors.Is(err, model.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorBody{Code: "USER_NOT_FOUND", Message: "User not found"})
	case errors.Is(err, model.ErrInvalidRefreshToken):
		c.JSON(http.StatusUnauthorized, errorBody{Code: "INVALID_REFRESH_TOKEN", Message: "Invalid refresh token"})
	case errors.Is(err, model.ErrAccountLocked):
		c.JSON(http.StatusTooManyRequests, errorBody{Code: "ACCOUNT_LOCKED", Message: "Account locked"})
	default:
		c.JSON(http.StatusInternalServerError, errorBody{Code: "INTERNAL_ERROR", Message: "Internal server error"})
	}
}

func writeValidationError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, errorBody{Code: "VALIDATION_ERROR", Message: "Request validation failed"})
}

func writeNotImplemented(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, errorBody{Code: "NOT_IMPLEMENTED", Message: "Not implemented"})
}

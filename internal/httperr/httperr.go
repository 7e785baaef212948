package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dance-school/internal/validation"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Write aborts the chain, so it is safe from middleware and handlers alike.
func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

// Invalid reports a binding/validation failure with per-field details.
func Invalid(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
		Code:    "invalid_request",
		Message: "Invalid request data.",
		Details: validation.ToDetails(err),
	})
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Unauthorized always carries the bearer challenge.
func Unauthorized(c *gin.Context, code, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// Package httpkit standardizes JSON responses and error payloads across
// handlers. This is part of the platform layer and contains no business
// logic.
package httpkit

import (
	"errors"
	"net/http"

	"bhph_crm_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire format for every error body.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// JSON writes payload with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes payload with 200 OK.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error writes an ErrorResponse with the given status code.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// HandleError writes the response for a service error. Typed
// *apperr.Error values carry their own status via Kind; anything else
// is treated as a 400 Bad Request. Reports whether err was non-nil.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), ErrorResponse{
			Error:   appErr.Message,
			Details: appErr.Details,
		})
		return true
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	return true
}

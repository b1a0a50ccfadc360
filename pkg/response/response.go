package response

import (
	"errors"
	"net/http"
	"time"

	"mbanq-accounts/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestID is the gin context key holding the per-request id.
const CtxRequestID = "request_id"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope. Kind is the stable
// category, ErrorCode the specific reason.
type ErrorResponse struct {
	Kind      apperror.Kind `json:"kind"`
	ErrorCode string        `json:"error_code"`
	Message   string        `json:"message"`
	RequestID string        `json:"request_id"`
	Timestamp string        `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, "", data)
}

// OKMessage sends a 200 response with a human-readable message alongside data.
func OKMessage(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusOK, message, data)
}

// Created sends a 201 response with data.
func Created(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusCreated, message, data)
}

func write(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessResponse{
		Message:   message,
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			Kind:      appErr.Kind,
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
			RequestID: getRequestID(c),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Kind:      apperror.KindInternal,
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Abort writes the error envelope and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get(CtxRequestID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}

package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

type errorMapping struct {
	target  error
	code    int
	message string
}

var serviceErrors = []errorMapping{
	{ErrInvalidTripRequest, http.StatusBadRequest, ""},
	{ErrInvalidInput, http.StatusBadRequest, ""},
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Page size must be between 1 and 100"},
	{ErrReviewNotFound, http.StatusNotFound, "Review not found"},
	{ErrDestinationNotFound, http.StatusNotFound, "Destination not found"},
	{ErrAccountNotFound, http.StatusUnauthorized, "Invalid email or password"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
}

// HandleServiceError maps a service error to a response. An empty message in
// the table means the error text itself is safe to show.
func HandleServiceError(c *gin.Context, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			RespondError(c, m.code, msg)
			return
		}
	}

	zap.L().Error("unhandled service error",
		zap.Error(err),
		zap.String("trace_id", traceID(c)),
		zap.String("path", c.FullPath()))
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}

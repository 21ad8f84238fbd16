package utils

import (
	"net/http"
	"time"

	"rentalite/services/faults"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

// ErrorHandler is a middleware that catches panics and returns structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Timestamp: time.Now(),
					Status:    http.StatusInternalServerError,
					Error:     "Internal error",
					Message:   "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, category string, message string) {
	logger := GetLogger()
	logger.Warn(category, zap.String("message", message))
	c.JSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     category,
		Message:   message,
	})
}

// RespondError maps a service-layer error to its HTTP status and body.
// Validation failures map to 400, missing entities to 404, everything
// else to 500.
func RespondError(c *gin.Context, err error) {
	if faults.IsValidation(err) {
		JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	if nf, ok := faults.AsNotFound(err); ok {
		category := "Not found"
		switch nf.Resource {
		case "booking":
			category = "Booking not found"
		case "property":
			category = "Property not found"
		}
		JSONError(c, http.StatusNotFound, category, err.Error())
		return
	}
	JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
}

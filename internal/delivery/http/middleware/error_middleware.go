package middleware

import (
	"errors"
	"net/http"

	"inboxops-contact-api/internal/delivery/http/response"
	"inboxops-contact-api/pkg/apperror"
	"inboxops-contact-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "error", err, "request_id", requestID(c))
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("Contact form error", "error", err, "request_id", requestID(c))
		response.Error(c, http.StatusInternalServerError, response.GenericErrorMessage)
	}
}

// Recovery turns panics into the generic JSON error instead of an empty 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered", "panic", recovered, "request_id", requestID(c))
		response.Error(c, http.StatusInternalServerError, response.GenericErrorMessage)
		c.Abort()
	})
}

// MethodNotAllowed is installed as the engine's NoMethod handler.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Error(apperror.MethodNotAllowed("Method not allowed"))
	}
}

// NotFound is installed as the engine's NoRoute handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Error(apperror.NotFound("Not found"))
	}
}

package response

import (
	"github.com/gin-gonic/gin"
)

// GenericErrorMessage is shown for every failure whose details must stay server-side.
const GenericErrorMessage = "Failed to send message. Please try again later."

// Response standardizes the API JSON response.
// Success bodies carry success+message, error bodies only error.
type Response struct {
	Success bool        `json:"success,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.Header("Content-Type", "application/json")
	c.JSON(code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.Header("Content-Type", "application/json")
	c.JSON(code, Response{
		Error: message,
	})
}

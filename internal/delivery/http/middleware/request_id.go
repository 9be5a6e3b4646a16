package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is read from the request and echoed on the response
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the id
	RequestIDKey = "RequestID"

	maxRequestIDLength = 64
)

// RequestID tags every request with an id, reusing the caller's when it looks sane.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get(RequestIDKey)
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

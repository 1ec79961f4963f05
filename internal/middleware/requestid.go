package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// maxRequestIDLen bounds a caller supplied id so it cannot bloat log lines.
const maxRequestIDLen = 64

// RequestID tags every request with an identifier, stored in the context
// under RequestIDKey and echoed in the X-Request-ID response header.
//
// An id sent by the client is reused so a chain of calls can be followed
// across services; otherwise a new UUID v4 is generated.
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

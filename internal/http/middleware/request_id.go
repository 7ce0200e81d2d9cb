package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Akhil-Baki/empathetic-email-helper/common/id"
	"github.com/Akhil-Baki/empathetic-email-helper/common/logger"
)

const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen caps caller-supplied ids before they reach the logs.
const maxRequestIDLen = 128

// RequestID tags every request with an id, reusing the caller's X-Request-ID when present,
// echoes it in the response and adds it to the context log fields.
// id.Init must have been called.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = id.NewString()
		}

		c.Header(RequestIDHeader, requestID)
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(requestID),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of keys stored in the Gin and request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// GetRequestIDFromContext retrieves the request ID assigned by the logging middleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestIDVal, exists := c.Get(string(requestIDKey))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(requestIDKey).(string); ok {
			return v, true
		}
		return "", false
	}

	requestID, ok := requestIDVal.(string)
	return requestID, ok
}

// withRequestValues stores the request-scoped logger and request ID on ctx.
func withRequestValues(ctx context.Context, requestID string, logger any) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	return context.WithValue(ctx, loggerKey, logger)
}

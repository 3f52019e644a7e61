package middleware

import "github.com/gin-gonic/gin"

// contextKey is the type of keys stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// GetRequestIDFromContext retrieves the request ID set by StructuredLoggingMiddleware.
// It returns the ID and a boolean indicating if it was found.
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
	if !ok {
		return "", false
	}
	return requestID, true
}

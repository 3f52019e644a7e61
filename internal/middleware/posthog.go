package middleware

import "github.com/gin-gonic/gin"

// EventTracker sends product analytics events. utils.PosthogClientWrapper implements it.
type EventTracker interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// PosthogEvent is a helper to send custom events from handlers, tagged with request details.
func PosthogEvent(c *gin.Context, tracker EventTracker, distinctID string, eventName string, properties map[string]any) {
	if tracker == nil || !tracker.IsInitialized() || distinctID == "" {
		return
	}

	// Ensure properties is not nil
	if properties == nil {
		properties = make(map[string]any)
	}

	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path
	if requestID, ok := GetRequestIDFromContext(c); ok {
		properties["request_id"] = requestID
	}

	tracker.Enqueue(distinctID, eventName, properties)
}

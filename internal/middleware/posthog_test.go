package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEvent struct {
	distinctID string
	event      string
	properties map[string]any
}

type fakeTracker struct {
	initialized bool
	events      []capturedEvent
}

func (f *fakeTracker) IsInitialized() bool { return f.initialized }

func (f *fakeTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	f.events = append(f.events, capturedEvent{distinctID: distinctID, event: event, properties: properties})
}

func TestPosthogEvent_AddsRequestDetails(t *testing.T) {
	var buf bytes.Buffer
	tracker := &fakeTracker{initialized: true}
	r := newTestRouter(&buf, func(c *gin.Context) {
		PosthogEvent(c, tracker, "Ana", "conversion_completed", map[string]any{"direction": "USD_TO_BRL"})
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Len(t, tracker.events, 1)
	ev := tracker.events[0]
	assert.Equal(t, "Ana", ev.distinctID)
	assert.Equal(t, "conversion_completed", ev.event)
	assert.Equal(t, "USD_TO_BRL", ev.properties["direction"])
	assert.Equal(t, http.MethodGet, ev.properties["method"])
	assert.Equal(t, "/ping", ev.properties["path"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), ev.properties["request_id"])
}

func TestPosthogEvent_Skipped(t *testing.T) {
	tests := []struct {
		name       string
		tracker    *fakeTracker
		distinctID string
	}{
		{"tracker not initialized", &fakeTracker{}, "Ana"},
		{"no distinct id", &fakeTracker{initialized: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := newTestRouter(&buf, func(c *gin.Context) {
				PosthogEvent(c, tt.tracker, tt.distinctID, "conversion_completed", nil)
				c.Status(http.StatusOK)
			})

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

			assert.Empty(t, tt.tracker.events)
		})
	}

	assert.NotPanics(t, func() {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/ping", nil)
		PosthogEvent(c, nil, "Ana", "conversion_completed", nil)
	})
}

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(buf *bytes.Buffer, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(logger), MetricsMiddleware())
	r.GET("/ping", h)
	return r
}

func TestStructuredLoggingMiddleware_InjectsRequestScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	var seenID string
	r := newTestRouter(&buf, func(c *gin.Context) {
		id, ok := GetRequestIDFromContext(c)
		require.True(t, ok)
		seenID = id
		GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	headerID := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(headerID)
	require.NoError(t, err)
	assert.Equal(t, headerID, seenID)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, headerID, entry["request_id"])
		assert.Equal(t, "/ping", entry["path"])
	}
}

func TestStructuredLoggingMiddleware_ReusesValidIncomingID(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRouter(&buf, func(c *gin.Context) { c.Status(http.StatusOK) })
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), GetLoggerFromCtx(context.Background()))

	custom := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	assert.Same(t, custom, GetLoggerFromCtx(WithLogger(context.Background(), custom)))
}

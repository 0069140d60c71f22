package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mce-sre/cluster-generator/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var b bytes.Buffer
	var correlationID string
	r := gin.New()
	logger := slog.New(New(slog.NewJSONHandler(&b, nil)))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger))

	r.GET("/", func(c *gin.Context) {
		correlationID, _ = middleware.GetCorrelationID(c.Request.Context())

		// middleware.RequestLogger and our call to InfoContext should add log lines with
		// attribute correlationId=<correlationID>
		logger.InfoContext(c.Request.Context(), "info")
		c.String(http.StatusOK, "success")
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	lines := 0
	sc := bufio.NewScanner(&b)
	for sc.Scan() {
		line := sc.Text()
		got := make(map[string]any)

		err = json.Unmarshal([]byte(line), &got)

		assert.NoError(t, err)
		t.Log("log line:", line)
		v, ok := got[middleware.RequestLoggerKeyCorrelationID]
		assert.True(t, ok, "want log line to have key %q", middleware.RequestLoggerKeyCorrelationID)
		assert.Equal(t, correlationID, v, "want log line to carry the request correlation id")
		lines++
	}
	assert.Equal(t, 2, lines, "want one line from the handler and one from the request logger")
}

func TestContextHandlerWithoutCorrelationID(t *testing.T) {
	var b bytes.Buffer
	logger := slog.New(New(slog.NewJSONHandler(&b, nil)))

	logger.Info("info")

	got := make(map[string]any)
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	_, ok := got[middleware.RequestLoggerKeyCorrelationID]
	assert.False(t, ok, "logs outside of a request should not carry a correlation id")
}

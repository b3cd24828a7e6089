//go:build unit

package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/handler/middleware"
	"booking-intake/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := middleware.NewLoggerWithWriter(config.LogConfig{Level: "debug", TimeZone: "UTC"}, buf)

	r := gin.New()
	r.Use(middleware.CustomRecovery(), l.LoggingMiddleware(), middleware.ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/boom", func(_ *gin.Context) {
		panic("boom")
	})
	r.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("disk full"), "Error saving data", nil)
	})
	r.GET("/taken", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("slot taken"), "taken", nil)
	})
	r.GET("/unwritten", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("slot taken"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusConflict, "taken"),
		})
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	t.Run("generated id is echoed and logged", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, id)
		assert.Contains(t, w.Body.String(), id)
		assert.Contains(t, buf.String(), "Request completed")
		assert.Contains(t, buf.String(), id)
	})

	t.Run("incoming id is kept", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(middleware.RequestIDHeader, "upstream-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "upstream-42", w.Header().Get(middleware.RequestIDHeader))
		assert.JSONEq(t, `{"request_id":"upstream-42"}`, w.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())
}

func TestErrorHandler_WritesRecordedError(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unwritten", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"taken"}`, w.Body.String())
}

func TestErrorHandler_LogsServerErrorCause(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	var reqLogs bytes.Buffer
	r := newLoggedRouter(&reqLogs)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Error saving data"}`, w.Body.String())
	assert.Contains(t, logs.String(), "Request failed")
	assert.Contains(t, logs.String(), "disk full")

	logs.Reset()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/taken", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NotContains(t, logs.String(), "Request failed", "client errors are not logged as failures")
}

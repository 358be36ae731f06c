//go:build unit

package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wedding-console/internal/handler/httperr"
	"wedding-console/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.ErrorHandler())

	r.GET("/aborted", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("car gone"), "Car is no longer available", "car-1")
	})
	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusGone}
		resp.Error.Message = "Booking form has expired"
		_ = c.Error(&gin.Error{Err: errors.New("expired"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/upstream-down", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadGateway, errors.New("dial tcp: refused"), "Marketplace unavailable", nil)
	})
	r.GET("/status-only", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/silent", func(c *gin.Context) {})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{
			name:     "aborted response is kept",
			path:     "/aborted",
			wantCode: http.StatusConflict,
			wantBody: `{"error":{"message":"Car is no longer available"},"detail":"car-1"}`,
		},
		{
			name:     "public error is rendered",
			path:     "/public",
			wantCode: http.StatusGone,
			wantBody: `{"error":{"message":"Booking form has expired"}}`,
		},
		{
			name:     "status without body",
			path:     "/status-only",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "nothing written falls back to 500",
			path:     "/silent",
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":{"message":"Internal server error"}}`,
		},
		{
			name:     "panic is recovered",
			path:     "/panic",
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":{"message":"Internal server error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody == "" {
				assert.Empty(t, w.Body.String())
				return
			}
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestErrorHandlerLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	r := newErrorRouter()

	t.Run("client errors are not logged as failures", func(t *testing.T) {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/aborted", nil))
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/public", nil))

		assert.NotContains(t, buf.String(), "request failed")
	})

	t.Run("server errors are logged with the cause", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/upstream-down", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "request failed")
		assert.Contains(t, buf.String(), "dial tcp: refused")
	})
}

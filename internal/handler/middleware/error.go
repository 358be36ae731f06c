package middleware

import (
	"log/slog"
	"net/http"

	"wedding-console/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs server-side failures and renders the last public error a
// handler attached when nothing has been written yet.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			if resp, ok := err.Meta.(httperr.Response); ok && resp.Status < http.StatusInternalServerError {
				continue
			}
			slog.Error("request failed", append(requestAttrs(c), "error", err.Err)...)
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		resp := httperr.Response{Status: http.StatusInternalServerError}
		resp.Error.Message = "Internal server error"
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic", append(requestAttrs(c), "panic", r)...)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}

func requestAttrs(c *gin.Context) []any {
	attrs := []any{"method", c.Request.Method, "path", c.FullPath()}
	if id := GetRequestID(c); id != "" {
		attrs = append(attrs, "request_id", id)
	}
	if sess, ok := GetSession(c); ok {
		attrs = append(attrs, "user_id", sess.User.ID)
	}
	return attrs
}

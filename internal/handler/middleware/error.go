package middleware

import (
	"log/slog"
	"net/http"

	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesOnError = 8

// ErrorHandler logs the cause behind 5xx responses and writes the public error body
// when a handler recorded an error without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		resp, hasResp := last.Meta.(httperr.Response)
		if hasResp && resp.Status >= http.StatusInternalServerError {
			slog.Error("Request failed",
				"request_id", GetRequestID(c),
				"status", resp.Status,
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, stackLinesOnError),
			)
		}

		if c.Writer.Written() {
			return
		}
		if hasResp && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic", "error", r, "path", c.Request.URL.Path, "request_id", GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
			}
		}()
		c.Next()
	}
}

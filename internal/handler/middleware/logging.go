package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"booking-intake/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	ctxRequestIDKey = "request_id"
	RequestIDHeader = "X-Request-ID"
)

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	l := NewLoggerWithWriter(cfg, os.Stdout)
	slog.SetDefault(l.logger)
	return l
}

// NewLoggerWithWriter builds the logger on w: JSON in release mode, text otherwise.
func NewLoggerWithWriter(cfg config.LogConfig, w io.Writer) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339Nano
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(timezone).Format(timeFormat))
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		logger:   slog.New(handler),
		timezone: timezone,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware tags every request with an id, echoed back in X-Request-ID,
// and logs its start and outcome. Health probes are logged at debug only.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 64 {
			requestID = l.generateRequestID()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		baseLevel := slog.LevelInfo
		if c.Request.URL.Path == "/health" {
			baseLevel = slog.LevelDebug
		}

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		ctx := c.Request.Context()
		l.logger.LogAttrs(ctx, baseLevel, "Request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.String("route", c.FullPath()),
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if sess, ok := GetSession(c); ok {
			attrs = append(attrs, slog.String("session_id", sess.ID))
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := baseLevel
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(ctx, level, "Request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func (l *Logger) generateRequestID() string {
	timestamp := time.Now().In(l.timezone).Format("20060102150405")

	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, time.Now().UnixNano()%100000000)
	}
	return timestamp + "-" + hex.EncodeToString(b)
}

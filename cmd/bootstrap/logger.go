package bootstrap

import (
	"log/slog"

	"booking-intake/internal/handler/middleware"
	"booking-intake/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		NewLogger,
	),
)

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}

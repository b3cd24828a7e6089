package components

import (
	"booking-intake/internal/handler"
	"booking-intake/internal/handler/api"
	"booking-intake/internal/handler/middleware"
	"booking-intake/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSubmissionHandler,
		api.NewDataHandler,
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewContactHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	submission *api.SubmissionHandler,
	data *api.DataHandler,
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	contact *api.ContactHandler,
) handler.Handlers {
	return handler.Handlers{
		Submission: submission,
		Data:       data,
		Auth:       auth,
		Booking:    booking,
		Contact:    contact,
	}
}

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

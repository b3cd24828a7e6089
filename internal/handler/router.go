package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-intake/internal/handler/api"
	"booking-intake/internal/handler/middleware"
	"booking-intake/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Submission *api.SubmissionHandler
	Data       *api.DataHandler
	Auth       *api.AuthHandler
	Booking    *api.BookingHandler
	Contact    *api.ContactHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	// DEBUG exposes the API docs even when gin runs in release mode
	if cfg.Server.Debug || gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.OPTIONS("/*path", middleware.Preflight)

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/save", Handler: h.Submission.Save, Mw: []gin.HandlerFunc{limiter.Middleware()}},
			{Method: http.MethodGet, Path: "/data", Handler: h.Data.GetData},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/check", Handler: h.Auth.Check},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.UpdateStatus},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.Delete},
				{Method: http.MethodPost, Path: "/contacts/:id/reply", Handler: h.Contact.Reply},
				{Method: http.MethodDelete, Path: "/contacts/:id", Handler: h.Contact.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

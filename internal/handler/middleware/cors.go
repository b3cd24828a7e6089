package middleware

import (
	"log/slog"
	"net/http"

	"booking-intake/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:              cfg.AllowOrigins,
		AllowMethods:              cfg.AllowMethods,
		AllowHeaders:              cfg.AllowHeaders,
		ExposeHeaders:             cfg.ExposeHeaders,
		AllowCredentials:          cfg.AllowCredentials,
		MaxAge:                    cfg.MaxAge,
		OptionsResponseStatusCode: http.StatusOK,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

// Preflight answers any OPTIONS request that reached routing with an empty 200.
func Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Abort()
}

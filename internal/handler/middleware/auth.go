package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"booking-intake/internal/domain/auth"
	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/pkg/cookie"
	"booking-intake/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessionValidator usecase.SessionValidator
}

const ctxSessionKey = "admin_session"

func NewAuthMiddleware(sessionValidator usecase.SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{
		sessionValidator: sessionValidator,
	}
}

// SessionToken reads the session token from the cookie, falling back to a bearer header.
func SessionToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.NewResponse(http.StatusUnauthorized, "Authentication required"))
			return
		}

		sess, err := m.sessionValidator.ValidateSession(token)
		if err != nil {
			slog.Warn("Session validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.NewResponse(http.StatusUnauthorized, "Authentication required"))
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// GetSession returns the admin session set by RequireAdmin.
func GetSession(c *gin.Context) (auth.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return auth.Session{}, false
	}
	sess, ok := v.(auth.Session)
	return sess, ok
}

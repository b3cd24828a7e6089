package api

import (
	"log/slog"
	"net/http"

	reqdto "booking-intake/internal/handler/dto/request"
	resdto "booking-intake/internal/handler/dto/response"
	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/handler/middleware"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/pkg/cookie"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/usecase"
	"booking-intake/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	validator usecase.SessionValidator
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, validator usecase.SessionValidator, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		validator: validator,
		cookieCfg: cfg.Session.Cookie,
	}
}

// @Summary Admin login
// @Description Check the admin password and start a session stored in the admin_session cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrAuth):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid password", nil)
		default:
			slog.Error("Admin login failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, result.TTL)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success:   true,
		Message:   "Login successful",
		ExpiresAt: result.ExpiresAt,
	})
}

// @Summary Admin logout
// @Description End the current admin session. Always succeeds.
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cmds.Logout(c.Request.Context(), middleware.SessionToken(c))
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.OK("Logged out successfully"))
}

// @Summary Check admin session
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.CheckResponse
// @Failure 401 {object} resdto.CheckResponse
// @Router /admin/check [get]
func (h *AuthHandler) Check(c *gin.Context) {
	if _, err := h.validator.ValidateSession(middleware.SessionToken(c)); err != nil {
		c.JSON(http.StatusUnauthorized, resdto.CheckResponse{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, resdto.CheckResponse{Authenticated: true})
}

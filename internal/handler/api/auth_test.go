//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"booking-intake/internal/domain/auth"
	"booking-intake/internal/handler/api"
	reqdto "booking-intake/internal/handler/dto/request"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/pkg/cookie"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/usecase"
	"booking-intake/internal/usecase/commands"
	"booking-intake/tests/common/httptest"
	commandsmock "booking-intake/tests/mock/commands"
	usecasemock "booking-intake/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockAuthCommands
	mockValidator *usecasemock.MockSessionValidator
	handler       *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockSessionValidator(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockValidator, config.NewTestConfig())

	s.router.POST("/api/admin/login", s.handler.Login)
	s.router.POST("/api/admin/logout", s.handler.Logout)
	s.router.GET("/api/admin/check", s.handler.Check)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/admin/login"

	s.Run("success: sets the session cookie", func() {
		expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin123").
			Return(&commands.LoginResult{Token: "signed-token", ExpiresAt: expiresAt, TTL: time.Hour}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.LoginRequest{Password: "admin123"}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["success"])
		s.Equal("Login successful", body["message"])

		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Equal("signed-token", c.Value)
		s.True(c.HttpOnly)
		s.Equal("/", c.Path)
		s.Equal(3600, c.MaxAge)
		s.Equal(http.SameSiteLaxMode, c.SameSite)
	})

	s.Run("error: 401 on wrong password", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "nope").
			Return(nil, errs.Mark(commands.ErrInvalidCredentials, errs.ErrAuth)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.LoginRequest{Password: "nope"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid password")
		s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "{")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 500 when the session cannot be issued", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("sign failed"), commands.ErrSessionIssue)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.LoginRequest{Password: "admin123"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("clears cookie and session", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), "signed-token").Times(1)

		cookies := []*http.Cookie{{Name: cookie.SessionCookieName, Value: "signed-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, cookies, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Logged out successfully", body["message"])
		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Equal("", c.Value)
		s.True(c.MaxAge < 0)
	})

	s.Run("always succeeds without a session", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), "").Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *AuthHandlerTestSuite) TestCheck() {
	s.Run("authenticated via cookie", func() {
		s.mockValidator.EXPECT().ValidateSession("signed-token").Return(auth.Session{ID: "sess-1"}, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.SessionCookieName, Value: "signed-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/admin/check", nil, cookies, "")

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["authenticated"])
	})

	s.Run("authenticated via bearer header", func() {
		s.mockValidator.EXPECT().ValidateSession("header-token").Return(auth.Session{ID: "sess-1"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/check", nil, "header-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("not authenticated", func() {
		s.mockValidator.EXPECT().ValidateSession("").Return(auth.Session{}, errs.Mark(usecase.ErrSessionInvalid, errs.ErrAuth)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/check", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.JSONEq(`{"authenticated":false}`, rec.Body.String())
	})
}

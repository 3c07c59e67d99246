//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/api"
	resdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/jwt"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/builder"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/httptest"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/testutil"
	commandsmock "github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/mock/commands"
	queriesmock "github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	authedUserID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig().Cookie)
	s.authedUserID = uuid.New()

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.authedUserID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	userBuilder := builder.NewUserBuilder()
	reqBody := userBuilder.BuildLoginRequestDTO()
	returnUser := userBuilder.BuildAuthorizedView()

	s.Run("success: returns 200 OK with access token and user", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{
				UserID:    returnUser.ID,
				TokenPair: &commands.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"},
			}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
			Return(returnUser, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
		s.NotNil(httptest.ExtractCookie(rec, "refresh_token"))
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		body := testutil.ToMap(s.T(), reqBody)
		testutil.Field("email", nil)(body)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrInvalidCredentials).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 401 Unauthorized hides unknown accounts", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 403 Forbidden for deactivated accounts", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrUserInactive).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is inactive")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	reqBody := builder.NewUserBuilder().BuildRegisterRequestDTO()

	s.Run("success: returns 201 Created with new user id", func() {
		createdID := uuid.New()
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(&commands.RegisterResult{UserID: createdID}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(createdID.String(), response["id"])
	})

	s.Run("error: 409 Conflict when email is taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(nil, commands.ErrEmailAlreadyTaken).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})

	s.Run("error: 400 Bad Request on missing email", func() {
		body := testutil.ToMap(s.T(), reqBody)
		testutil.Field("email", nil)(body)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: refresh token from request body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "valid-refresh-token").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"refresh_token": "valid-refresh-token"}, "")

		var response resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
	})

	s.Run("success: refresh token from cookie", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "cookie-refresh-token").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)
		cookies := []*http.Cookie{{Name: "refresh_token", Value: "cookie-refresh-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		var response resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 401 Unauthorized without any token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: 401 Unauthorized on invalid token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "expired-token").
			Return(nil, commands.ErrTokenValidation).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"refresh_token": "expired-token"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current user", func() {
		returnUser := builder.NewUserBuilder().BuildAuthorizedView()
		returnUser.ID = s.authedUserID
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.authedUserID).
			Return(returnUser, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.Email)
	})

	s.Run("error: 401 Unauthorized without session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 404 Not Found when account vanished", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.authedUserID).
			Return(nil, queries.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		access := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(access)
		s.Equal(-1, access.MaxAge)
	})
}

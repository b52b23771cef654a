//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"curtaincall/internal/handler/api"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/usecase"
	"curtaincall/tests/common/httptest"
	usecasemock "curtaincall/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockAdmin *usecasemock.MockAdminUseCase
	handler   *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmin = usecasemock.NewMockAdminUseCase(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockAdmin)

	s.router.POST("/admin/login", s.handler.Login)
	adminRequired := s.router.Group("", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("admin_id", "boss")
		}
	})
	adminRequired.GET("/admin/active", s.handler.Active)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestLogin() {
	url := "/admin/login"
	reqBody := map[string]any{"adminId": "boss", "adminPassword": "admin123"}

	s.Run("success: returns the admin token", func() {
		s.mockAdmin.EXPECT().Login(gomock.Any(), "boss", "admin123").
			Return("admin-jwt-token", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AdminAuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("admin-jwt-token", response.Token)
	})

	s.Run("error: 400 Bad Request for missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"adminId": "boss"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown admin", func() {
		s.mockAdmin.EXPECT().Login(gomock.Any(), "boss", "admin123").
			Return("", usecase.ErrAdminNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 401 Unauthorized for a wrong password", func() {
		s.mockAdmin.EXPECT().Login(gomock.Any(), "boss", "admin123").
			Return("", usecase.ErrAdminInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestActive() {
	url := "/admin/active"

	s.Run("success: answers with the admin id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "admin-token")

		var response resdto.AdminSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("boss", response.AdminID)
	})

	s.Run("error: 401 Unauthorized without auth context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

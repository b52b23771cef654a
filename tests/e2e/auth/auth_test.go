//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/tests/common/httptest"
	"curtaincall/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	idCheckURL  = "/api/auth/id-check"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
	myCouponURL = "/api/coupons/my"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func registerBody(id string) map[string]any {
	return map[string]any{
		"id":    id,
		"pwd":   "password123",
		"name":  "홍길동",
		"phone": "010-1234-5678",
		"email": id + "@example.com",
	}
}

func (s *authSuite) register(id string) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, registerBody(id), "")
	s.Require().Equal(http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())
}

func (s *authSuite) login(id, pwd string) (*resdto.AuthResponse, int) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
		map[string]any{"id": id, "pwd": pwd}, "")
	if rec.Code != http.StatusOK {
		return nil, rec.Code
	}
	var response resdto.AuthResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &response)
	return &response, rec.Code
}

func (s *authSuite) TestRegisterAndLogin() {
	s.Run("register then login returns a usable token", func() {
		s.register("hong")

		auth, code := s.login("hong", "password123")
		s.Require().Equal(http.StatusOK, code)
		s.NotEmpty(auth.Token)
		s.Equal("hong", auth.User.ID)
		s.Equal("hong@example.com", auth.User.Email)
		s.Equal("BRONZE", auth.User.Grade)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, auth.Token)
		var me resdto.MemberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &me)
		s.Equal("hong", me.ID)
	})

	s.Run("registration issues the welcome coupon", func() {
		s.register("hong")
		auth, code := s.login("hong", "password123")
		s.Require().Equal(http.StatusOK, code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, myCouponURL, nil, auth.Token)
		var coupons []resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &coupons)
		s.Require().Len(coupons, 1)
		s.Equal("hong_welcome", coupons[0].DocID)
		s.Equal(3000, coupons[0].Amount)
	})

	s.Run("duplicate id is rejected with 409", func() {
		s.register("hong")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, registerBody("hong"), "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("wrong password is rejected with 401", func() {
		s.register("hong")

		_, code := s.login("hong", "wrong-password")
		s.Equal(http.StatusUnauthorized, code)
	})

	s.Run("unknown member is rejected with 401", func() {
		_, code := s.login("nobody", "password123")
		s.Equal(http.StatusUnauthorized, code)
	})
}

func (s *authSuite) TestIDCheck() {
	s.Run("free id reports available", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, idCheckURL,
			map[string]any{"id": "newcomer"}, "")

		var response resdto.IDCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
	})

	s.Run("taken id reports unavailable", func() {
		s.register("hong")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, idCheckURL,
			map[string]any{"id": "hong"}, "")

		var response resdto.IDCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
	})
}

func (s *authSuite) TestMeRequiresAuth() {
	s.Run("missing token is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("garbage token is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

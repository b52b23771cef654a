//go:build e2e

package order_test

import (
	"net/http"
	"testing"
	"time"

	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/tests/common/dbtest"
	"curtaincall/tests/common/httptest"
	"curtaincall/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL      = "/api/auth/register"
	loginURL         = "/api/auth/login"
	cardURL          = "/api/payments/card"
	reservedSeatsURL = "/api/orders/reserved-seats"
)

type orderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

// registerAndLogin creates a fresh member through the API and returns an
// access token for it.
func (s *orderSuite) registerAndLogin(id string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, map[string]any{
		"id":    id,
		"pwd":   "password123",
		"name":  "홍길동",
		"email": id + "@example.com",
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
		map[string]any{"id": id, "pwd": "password123"}, "")
	s.Require().Equal(http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var auth resdto.AuthResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &auth)
	return auth.Token
}

func performanceOrderBody(seatID string) map[string]any {
	return map[string]any{
		"kind":           "performance",
		"payment_method": "card",
		"total_price":    130000,
		"performance_id": "PF001234",
		"title":          "헤드윅",
		"venue":          "샤롯데씨어터",
		"date":           "2026-04-26",
		"seats": []map[string]any{
			{"seat_id": seatID, "seat_grade": "VIP", "seat_price": 130000},
		},
	}
}

func (s *orderSuite) submitCardOrder(token string, body map[string]any) resdto.CreateOrderResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cardURL, body, token)
	s.Require().Equal(http.StatusCreated, rec.Code, "card order failed: %s", rec.Body.String())

	var response resdto.CreateOrderResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &response)
	return response
}

func (s *orderSuite) TestCardOrderLifecycle() {
	s.Run("card order is stored paid and retrievable", func() {
		token := s.registerAndLogin("hong")

		created := s.submitCardOrder(token, performanceOrderBody("A-12"))
		s.Len(created.OrderID, 12)
		s.Equal("결제완료", created.Status)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/orders/performance/"+created.OrderID, nil, token)
		var fetched resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal("헤드윅", fetched.Title)
		s.Equal("2026-04-26", fetched.Date)
		s.Require().Len(fetched.Seats, 1)
		s.Equal("A-12", fetched.Seats[0].SeatID)
	})

	s.Run("orders of one member are invisible to another", func() {
		hongToken := s.registerAndLogin("hong")
		leeToken := s.registerAndLogin("lee")

		created := s.submitCardOrder(hongToken, performanceOrderBody("A-12"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/orders/performance/"+created.OrderID, nil, leeToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("my listing and latest reflect the new order", func() {
		token := s.registerAndLogin("hong")
		created := s.submitCardOrder(token, performanceOrderBody("A-12"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/my/performance", nil, token)
		var listed []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
		s.Require().Len(listed, 1)
		s.Equal(created.OrderID, listed[0].OrderID)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/my/latest", nil, token)
		var latest resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &latest)
		s.Equal(created.OrderID, latest.OrderID)
	})

	s.Run("cancel flips the order status", func() {
		token := s.registerAndLogin("hong")
		created := s.submitCardOrder(token, performanceOrderBody("A-12"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/orders/performance/"+created.OrderID, nil, token)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/orders/performance/"+created.OrderID, nil, token)
		var fetched resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal("취소", fetched.Status)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/orders/performance/"+created.OrderID, nil, token)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *orderSuite) TestSeatConflicts() {
	s.Run("the same seat cannot be sold twice for one date", func() {
		hongToken := s.registerAndLogin("hong")
		leeToken := s.registerAndLogin("lee")

		s.submitCardOrder(hongToken, performanceOrderBody("A-12"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cardURL,
			performanceOrderBody("A-12"), leeToken)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("cancelled orders free their seats", func() {
		hongToken := s.registerAndLogin("hong")
		leeToken := s.registerAndLogin("lee")

		created := s.submitCardOrder(hongToken, performanceOrderBody("A-12"))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/orders/performance/"+created.OrderID, nil, hongToken)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		s.submitCardOrder(leeToken, performanceOrderBody("A-12"))
	})

	s.Run("reserved seats lists sold seats for a date", func() {
		token := s.registerAndLogin("hong")
		s.submitCardOrder(token, performanceOrderBody("A-12"))
		s.submitCardOrder(token, performanceOrderBody("A-13"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			reservedSeatsURL+"?title=%ED%97%A4%EB%93%9C%EC%9C%85&date=2026-04-26", nil, "")
		var response resdto.ReservedSeatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.ElementsMatch([]string{"A-12", "A-13"}, response.Seats)
	})
}

func (s *orderSuite) TestAccommodationOrder() {
	s.Run("accommodation order round-trips through its own store", func() {
		token := s.registerAndLogin("hong")

		body := map[string]any{
			"kind":             "accommodation",
			"payment_method":   "card",
			"total_price":      180000,
			"accommodation_id": "2871024",
			"name":             "북촌 한옥스테이",
			"room_name":        "안채",
			"address":          "서울특별시 종로구 계동길 37",
			"check_in":         "2026-05-01",
			"check_out":        "2026-05-03",
			"guest_count":      2,
			"room":             map[string]any{"room_id": "R-01", "room_capacity": 4},
		}
		created := s.submitCardOrder(token, body)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/my/accommodation", nil, token)
		var listed []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
		s.Require().Len(listed, 1)
		s.Equal(created.OrderID, listed[0].OrderID)
		s.Equal("북촌 한옥스테이", listed[0].Name)
		s.Equal("2026-05-01", listed[0].CheckIn)
		s.Require().NotNil(listed[0].Room)
		s.Equal("R-01", listed[0].Room.RoomID)
	})
}

func (s *orderSuite) TestPublicListing() {
	s.Run("listing is ordered by numeric order-id prefix descending", func() {
		dbtest.CreateTestMember(s.T(), s.DB, "seed-user", "김철수", "seed@example.com")
		date := time.Date(2026, 4, 26, 0, 0, 0, 0, time.UTC)
		dbtest.CreateTestOrder(s.T(), s.DB, "00001ABCDEFG", "seed-user", "헤드윅", date)
		dbtest.CreateTestOrder(s.T(), s.DB, "00002BCDEFGH", "seed-user", "시카고", date)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/performance", nil, "")
		var listed []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
		s.Require().Len(listed, 2)
		s.Equal("00002BCDEFGH", listed[0].OrderID)
		s.Equal("00001ABCDEFG", listed[1].OrderID)
	})
}

func (s *orderSuite) TestReviewFlow() {
	s.Run("review author comes from the order owner", func() {
		token := s.registerAndLogin("hong")
		created := s.submitCardOrder(token, performanceOrderBody("A-12"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reviews/theme", map[string]any{
			"order_id":       created.OrderID,
			"review_content": "배우들의 열연이 인상적이었습니다",
			"rating":         5,
		}, token)
		var rv resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &rv)

		expected := &resdto.ReviewResponse{
			Type:      "theme",
			UserID:    "hong",
			OrderID:   created.OrderID,
			SubjectID: "PF001234",
			Content:   "배우들의 열연이 인상적이었습니다",
			Rating:    5,
			ImageURLs: []string{},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.ReviewResponse{}, "ID", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &rv, opts...); diff != "" {
			s.T().Errorf("Review response mismatch (-want +got):\n%s", diff)
		}

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/reviews/theme?subjectId=PF001234", nil, "")
		var listed []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
		s.Require().Len(listed, 1)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/reviews/theme/"+rv.ID, nil, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("review for an unknown order is rejected", func() {
		token := s.registerAndLogin("hong")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reviews/theme", map[string]any{
			"order_id":       "99999ZZZZZZZ",
			"review_content": "없는 주문",
			"rating":         3,
		}, token)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/handler/api"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/usecase"
	"curtaincall/tests/common/httptest"
	usecasemock "curtaincall/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockOrders *usecasemock.MockOrderUseCase
	handler    *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrders = usecasemock.NewMockOrderUseCase(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockOrders)

	s.router.GET("/orders/reserved-seats", s.handler.ReservedSeats)
	authed := s.router.Group("", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", "hong")
		}
	})
	authed.GET("/orders/my/latest", s.handler.Latest)
	authed.GET("/orders/my/:kind", s.handler.ListMine)
	authed.GET("/orders/:kind/:id", s.handler.Get)
	authed.DELETE("/orders/:kind/:id", s.handler.Cancel)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func fixtureOrder() *order.Order {
	return &order.Order{
		OrderID:       "00042ABCDEFG",
		UserID:        "hong",
		Kind:          order.KindPerformance,
		PaymentMethod: order.PaymentCard,
		Status:        order.StatusPaid,
		TotalPrice:    130000,
		OrderDate:     time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
		PerformanceID: "PF001234",
		Title:         "헤드윅",
		Venue:         "샤롯데씨어터",
		Date:          time.Date(2026, 4, 26, 0, 0, 0, 0, time.UTC),
		Seats:         []order.Seat{{SeatID: "A-12", SeatGrade: "VIP", SeatPrice: 130000}},
		ImageURL:      "http://img.example.com/poster1.jpg",
	}
}

func (s *OrderHandlerTestSuite) TestListMine() {
	s.Run("success: lists the caller's performance orders", func() {
		s.mockOrders.EXPECT().ListByUser(gomock.Any(), "hong", order.KindPerformance).
			Return([]*order.Order{fixtureOrder()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/my/performance", nil, "some-token")

		var response []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("00042ABCDEFG", response[0].OrderID)
		s.Equal("2026-04-26", response[0].Date)
	})

	s.Run("error: 400 for an unknown kind", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/my/cruise", nil, "some-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/my/performance", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestLatest() {
	url := "/orders/my/latest"

	s.Run("success: returns the most recent order", func() {
		s.mockOrders.EXPECT().LatestByUser(gomock.Any(), "hong").
			Return(fixtureOrder(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("헤드윅", response.Title)
	})

	s.Run("error: 404 when the member has no orders", func() {
		s.mockOrders.EXPECT().LatestByUser(gomock.Any(), "hong").
			Return(nil, usecase.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestGet() {
	url := "/orders/performance/00042ABCDEFG"

	s.Run("success: returns the order", func() {
		s.mockOrders.EXPECT().
			Find(gomock.Any(), "hong", order.KindPerformance, order.OrderID("00042ABCDEFG")).
			Return(fixtureOrder(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("00042ABCDEFG", response.OrderID)
		s.Len(response.Seats, 1)
	})

	s.Run("error: 403 for another member's order", func() {
		s.mockOrders.EXPECT().
			Find(gomock.Any(), "hong", order.KindPerformance, order.OrderID("00042ABCDEFG")).
			Return(nil, usecase.ErrOrderForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 404 for an unknown order", func() {
		s.mockOrders.EXPECT().
			Find(gomock.Any(), "hong", order.KindPerformance, order.OrderID("00042ABCDEFG")).
			Return(nil, usecase.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestCancel() {
	url := "/orders/performance/00042ABCDEFG"

	s.Run("success: returns 204", func() {
		s.mockOrders.EXPECT().
			Cancel(gomock.Any(), "hong", order.KindPerformance, order.OrderID("00042ABCDEFG")).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "some-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 for an already cancelled order", func() {
		s.mockOrders.EXPECT().
			Cancel(gomock.Any(), "hong", order.KindPerformance, order.OrderID("00042ABCDEFG")).
			Return(usecase.ErrOrderNotCancelable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "some-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestReservedSeats() {
	s.Run("success: returns sold seat ids", func() {
		s.mockOrders.EXPECT().
			ReservedSeats(gomock.Any(), "헤드윅", time.Date(2026, 4, 26, 0, 0, 0, 0, time.UTC)).
			Return([]string{"A-12", "A-13"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/orders/reserved-seats?title=%ED%97%A4%EB%93%9C%EC%9C%85&date=2026-04-26", nil, "")

		var response resdto.ReservedSeatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"A-12", "A-13"}, response.Seats)
	})

	s.Run("error: 400 when title or date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/reserved-seats?title=x", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/orders/reserved-seats?title=x&date=26.04.2026", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

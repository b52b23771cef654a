//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/handler/api"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/infra/gateway"
	"curtaincall/internal/usecase"
	"curtaincall/tests/common/httptest"
	usecasemock "curtaincall/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockPayment *usecasemock.MockPaymentUseCase
	handler     *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayment = usecasemock.NewMockPaymentUseCase(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockPayment)

	authed := s.router.Group("", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", "hong")
		}
	})
	authed.POST("/payments/card", s.handler.SubmitCard)
	authed.POST("/payments/kakao/ready", s.handler.WalletReady)
	authed.POST("/payments/kakao/approve", s.handler.WalletApprove)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

var errBackend = errors.New("backend failure")

func cardOrderBody() map[string]any {
	return map[string]any{
		"kind":           "performance",
		"payment_method": "card",
		"total_price":    130000,
		"performance_id": "PF001234",
		"title":          "헤드윅",
		"venue":          "샤롯데씨어터",
		"date":           "2026-04-26",
		"image_url":      "http://img.example.com/poster1.jpg",
		"seats": []map[string]any{
			{"seat_id": "A-12", "seat_grade": "VIP", "seat_price": 130000},
		},
	}
}

func (s *PaymentHandlerTestSuite) TestSubmitCard() {
	url := "/payments/card"

	s.Run("success: returns 201 with order id", func() {
		s.mockPayment.EXPECT().SubmitCardOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, o *order.Order) (order.OrderID, error) {
				s.Equal("hong", o.UserID)
				s.Equal(order.PaymentCard, o.PaymentMethod)
				s.Equal(time.Date(2026, 4, 26, 0, 0, 0, 0, time.UTC), o.Date)
				return order.OrderID("00042ABCDEFG"), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, cardOrderBody(), "some-token")

		var response resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("00042ABCDEFG", response.OrderID)
		s.Equal("결제완료", response.Status)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, cardOrderBody(), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 for unknown payment method", func() {
		body := cardOrderBody()
		body["payment_method"] = "bitcoin"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "some-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 for malformed date", func() {
		body := cardOrderBody()
		body["date"] = "26/04/2026"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "some-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 when a seat is already reserved", func() {
		s.mockPayment.EXPECT().SubmitCardOrder(gomock.Any(), gomock.Any()).
			Return(order.OrderID(""), usecase.ErrSeatAlreadyTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, cardOrderBody(), "some-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 400 when the wallet method hits the card endpoint", func() {
		s.mockPayment.EXPECT().SubmitCardOrder(gomock.Any(), gomock.Any()).
			Return(order.OrderID(""), usecase.ErrUnsupportedPayment).Times(1)

		body := cardOrderBody()
		body["payment_method"] = "kakaopay"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "some-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PaymentHandlerTestSuite) TestWalletReady() {
	url := "/payments/kakao/ready"

	s.Run("success: returns tid and redirect url", func() {
		s.mockPayment.EXPECT().WalletReady(gomock.Any(), gomock.Any()).
			Return(&usecase.WalletReadyResult{
				OrderID:     order.OrderID("00042ABCDEFG"),
				TID:         "T1234567890",
				RedirectURL: "https://pay.example.com/redirect",
			}, nil).Times(1)

		body := cardOrderBody()
		body["payment_method"] = "kakaopay"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "some-token")

		var response resdto.WalletReadyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("T1234567890", response.TID)
		s.Equal("https://pay.example.com/redirect", response.NextRedirectPC)
	})

	s.Run("error: 500 when the provider is unreachable", func() {
		s.mockPayment.EXPECT().WalletReady(gomock.Any(), gomock.Any()).
			Return(nil, errBackend).Times(1)

		body := cardOrderBody()
		body["payment_method"] = "kakaopay"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "some-token")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})

	s.Run("error: 500 forwards the provider rejection body", func() {
		s.mockPayment.EXPECT().WalletReady(gomock.Any(), gomock.Any()).
			Return(nil, &gateway.UpstreamError{
				Op:     "wallet ready",
				Status: http.StatusBadRequest,
				Body:   []byte(`{"code":-2,"msg":"no such cid"}`),
			}).Times(1)

		body := cardOrderBody()
		body["payment_method"] = "kakaopay"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "some-token")
		s.Equal(http.StatusInternalServerError, rec.Code)

		var response struct {
			Error   string `json:"error"`
			Details struct {
				Code int    `json:"code"`
				Msg  string `json:"msg"`
			} `json:"details"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal(-2, response.Details.Code)
		s.Equal("no such cid", response.Details.Msg)
	})
}

func (s *PaymentHandlerTestSuite) TestWalletApprove() {
	url := "/payments/kakao/approve"
	reqBody := map[string]any{
		"kind":     "performance",
		"order_id": "00042ABCDEFG",
		"pg_token": "pg-token-xyz",
	}

	s.Run("success: returns the paid order", func() {
		s.mockPayment.EXPECT().
			WalletApprove(gomock.Any(), order.KindPerformance, order.OrderID("00042ABCDEFG"), "pg-token-xyz").
			Return(&order.Order{
				OrderID:       "00042ABCDEFG",
				UserID:        "hong",
				Kind:          order.KindPerformance,
				PaymentMethod: order.PaymentKakaoPay,
				Status:        order.StatusPaid,
				TotalPrice:    130000,
				Title:         "헤드윅",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("결제완료", response.Status)
		s.Equal("00042ABCDEFG", response.OrderID)
	})

	s.Run("error: 409 when the transaction was never readied", func() {
		s.mockPayment.EXPECT().
			WalletApprove(gomock.Any(), order.KindPerformance, order.OrderID("00042ABCDEFG"), "pg-token-xyz").
			Return(nil, usecase.ErrPaymentNotReady).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 404 for an unknown order", func() {
		s.mockPayment.EXPECT().
			WalletApprove(gomock.Any(), order.KindPerformance, order.OrderID("00042ABCDEFG"), "pg-token-xyz").
			Return(nil, usecase.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 500 forwards the provider rejection body", func() {
		s.mockPayment.EXPECT().
			WalletApprove(gomock.Any(), order.KindPerformance, order.OrderID("00042ABCDEFG"), "pg-token-xyz").
			Return(nil, &gateway.UpstreamError{
				Op:     "wallet approve",
				Status: http.StatusBadRequest,
				Body:   []byte(`{"code":-780,"msg":"approval failure"}`),
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "approval failure")
	})

	s.Run("error: 400 for a missing pg token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"kind": "performance", "order_id": "00042ABCDEFG"}, "some-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

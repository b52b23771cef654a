package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"curtaincall/internal/domain/order"
	reqdto "curtaincall/internal/handler/dto/request"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/handler/middleware"
	"curtaincall/internal/infra/gateway"
	"curtaincall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{paymentUseCase: paymentUseCase}
}

func (h *PaymentHandler) bindOrder(c *gin.Context) (*order.Order, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return nil, false
	}

	o, err := req.ToDomain(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return nil, false
	}
	return o, true
}

// @Summary Submit a card order
// @Description Persists the order already paid; card capture happens in the PG widget
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order payload"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 409 {object} map[string]string
// @Router /payments/card [post]
func (h *PaymentHandler) SubmitCard(c *gin.Context) {
	o, ok := h.bindOrder(c)
	if !ok {
		return
	}

	orderID, err := h.paymentUseCase.SubmitCardOrder(c.Request.Context(), o)
	if err != nil {
		h.writePaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{
		OrderID: orderID.String(),
		Status:  order.StatusPaid.String(),
	})
}

// @Summary Ready a wallet payment
// @Description Registers the transaction with the wallet provider and persists a pending order
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order payload"
// @Success 200 {object} resdto.WalletReadyResponse
// @Router /payments/kakao/ready [post]
func (h *PaymentHandler) WalletReady(c *gin.Context) {
	o, ok := h.bindOrder(c)
	if !ok {
		return
	}

	result, err := h.paymentUseCase.WalletReady(c.Request.Context(), o)
	if err != nil {
		h.writePaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletReady(result))
}

// @Summary Approve a readied wallet payment
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.WalletApproveRequest true "Approve payload"
// @Success 200 {object} resdto.OrderResponse
// @Router /payments/kakao/approve [post]
func (h *PaymentHandler) WalletApprove(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.WalletApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	o, err := h.paymentUseCase.WalletApprove(
		c.Request.Context(), order.Kind(req.Kind), order.OrderID(req.OrderID), req.PgToken)
	if err != nil {
		h.writePaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(o))
}

func (h *PaymentHandler) writePaymentError(c *gin.Context, err error) {
	var upstream *gateway.UpstreamError
	switch {
	case errors.Is(err, usecase.ErrUnsupportedPayment):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment method"})
	case errors.Is(err, order.ErrMissingField),
		errors.Is(err, order.ErrInvalidKind),
		errors.Is(err, order.ErrNegativeTotalPrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data"})
	case errors.Is(err, usecase.ErrSeatAlreadyTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Seat already reserved"})
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, usecase.ErrPaymentNotReady):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment transaction not readied"})
	case errors.As(err, &upstream):
		// The provider's rejection body goes back to the client so the
		// payment widget can show the real reason.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Payment provider rejected the request",
			"details": upstreamDetails(upstream.Body),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func upstreamDetails(body []byte) any {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}

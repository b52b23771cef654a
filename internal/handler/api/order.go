package api

import (
	"errors"
	"net/http"
	"time"

	"curtaincall/internal/domain/order"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/handler/middleware"
	"curtaincall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUseCase: orderUseCase}
}

func kindFromParam(c *gin.Context) (order.Kind, bool) {
	kind := order.Kind(c.Param("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order kind",
		})
		return "", false
	}
	return kind, true
}

// @Summary List all performance orders
// @Tags orders
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /orders/performance [get]
func (h *OrderHandler) ListPerformance(c *gin.Context) {
	orders, err := h.orderUseCase.ListPerformance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrders(orders))
}

func (h *OrderHandler) ListAccommodation(c *gin.Context) {
	orders, err := h.orderUseCase.ListAccommodation(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrders(orders))
}

// @Summary List the caller's orders of one kind
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param kind path string true "performance or accommodation"
// @Success 200 {array} resdto.OrderResponse
// @Router /orders/my/{kind} [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}

	orders, err := h.orderUseCase.ListByUser(c.Request.Context(), userID, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrders(orders))
}

// @Summary Latest performance order of the caller
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /orders/my/latest [get]
func (h *OrderHandler) Latest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	latest, err := h.orderUseCase.LatestByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No orders found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrder(latest))
}

// @Summary Seats already sold for a performance date
// @Tags orders
// @Produce json
// @Param title query string true "Performance title"
// @Param date query string true "Performance date (YYYY-MM-DD)"
// @Success 200 {object} resdto.ReservedSeatsResponse
// @Router /orders/reserved-seats [get]
func (h *OrderHandler) ReservedSeats(c *gin.Context) {
	title := c.Query("title")
	dateStr := c.Query("date")
	if title == "" || dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "title and date are required",
		})
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	seats, err := h.orderUseCase.ReservedSeats(c.Request.Context(), title, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.ReservedSeatsResponse{Seats: seats})
}

// @Summary Get one of the caller's orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param kind path string true "performance or accommodation"
// @Param id path string true "Order id"
// @Success 200 {object} resdto.OrderResponse
// @Router /orders/{kind}/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}

	found, err := h.orderUseCase.Find(c.Request.Context(), userID, kind, order.OrderID(c.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, usecase.ErrOrderForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Order belongs to another member"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrder(found))
}

// @Summary Cancel one of the caller's orders
// @Tags orders
// @Security BearerAuth
// @Param kind path string true "performance or accommodation"
// @Param id path string true "Order id"
// @Success 204 "No Content"
// @Router /orders/{kind}/{id} [delete]
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}

	err := h.orderUseCase.Cancel(c.Request.Context(), userID, kind, order.OrderID(c.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, usecase.ErrOrderForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Order belongs to another member"})
		case errors.Is(err, usecase.ErrOrderNotCancelable):
			c.JSON(http.StatusConflict, gin.H{"error": "Order cannot be cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

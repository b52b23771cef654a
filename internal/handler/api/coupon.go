package api

import (
	"errors"
	"net/http"

	reqdto "curtaincall/internal/handler/dto/request"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/handler/httperr"
	"curtaincall/internal/handler/middleware"
	"curtaincall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponUseCase usecase.CouponUseCase
}

func NewCouponHandler(couponUseCase usecase.CouponUseCase) *CouponHandler {
	return &CouponHandler{couponUseCase: couponUseCase}
}

// @Summary List the caller's coupons
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons/my [get]
func (h *CouponHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	coupons, err := h.couponUseCase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupons", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupons(coupons))
}

// @Summary List all coupons
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons [get]
func (h *CouponHandler) ListAll(c *gin.Context) {
	coupons, err := h.couponUseCase.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupons", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupons(coupons))
}

// @Summary Issue a coupon
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.IssueCouponRequest true "Coupon payload"
// @Success 201 {object} resdto.CouponResponse
// @Router /coupons [post]
func (h *CouponHandler) Issue(c *gin.Context) {
	var req reqdto.IssueCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	cp, err := h.couponUseCase.Issue(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Issue coupon failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCoupon(cp))
}

// @Summary Get one coupon document
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param docId path string true "Coupon document id"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} map[string]string
// @Router /coupons/{docId} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	cp, err := h.couponUseCase.Find(c.Request.Context(), c.Param("docId"))
	if err != nil {
		if errors.Is(err, usecase.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(cp))
}

// @Summary Delete all of the caller's coupons
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.DeleteCouponsResponse
// @Router /coupons/my [delete]
func (h *CouponHandler) DeleteMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	deleted, err := h.couponUseCase.DeleteByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteCouponsResponse{Deleted: deleted})
}

package api

import (
	"errors"
	"net/http"

	"curtaincall/internal/domain/review"
	reqdto "curtaincall/internal/handler/dto/request"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/handler/httperr"
	"curtaincall/internal/handler/middleware"
	"curtaincall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: reviewUseCase}
}

func reviewTypeFromParam(c *gin.Context) (review.Type, bool) {
	t := review.Type(c.Param("type"))
	if !t.IsValid() {
		httperr.AbortWithError(c, http.StatusBadRequest, review.ErrInvalidType, "Invalid review type", nil)
		return "", false
	}
	return t, true
}

// @Summary Create a review for an order
// @Description The author is derived from the order's owner, not the payload
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param type path string true "accommodation or theme"
// @Param request body reqdto.CreateReviewRequest true "Review payload"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 404 {object} map[string]string
// @Router /reviews/{type} [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	t, ok := reviewTypeFromParam(c)
	if !ok {
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rv, err := h.reviewUseCase.Create(c.Request.Context(), req.ToInput(t))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, review.ErrInvalidRating),
			errors.Is(err, review.ErrMissingContent),
			errors.Is(err, review.ErrMissingOrder):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReview(rv))
}

// @Summary List reviews of one type
// @Tags reviews
// @Produce json
// @Param type path string true "accommodation or theme"
// @Param subjectId query string false "Filter by reviewed subject"
// @Success 200 {array} resdto.ReviewResponse
// @Router /reviews/{type} [get]
func (h *ReviewHandler) List(c *gin.Context) {
	t, ok := reviewTypeFromParam(c)
	if !ok {
		return
	}

	var (
		reviews []*review.Review
		err     error
	)
	if subjectID := c.Query("subjectId"); subjectID != "" {
		reviews, err = h.reviewUseCase.ListBySubject(c.Request.Context(), t, subjectID)
	} else {
		reviews, err = h.reviewUseCase.ListAll(c.Request.Context(), t)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviews(reviews))
}

// @Summary List the caller's reviews of one type
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param type path string true "accommodation or theme"
// @Success 200 {array} resdto.ReviewResponse
// @Router /reviews/{type}/my [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	t, ok := reviewTypeFromParam(c)
	if !ok {
		return
	}

	reviews, err := h.reviewUseCase.ListByUser(c.Request.Context(), t, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviews(reviews))
}

// @Summary Delete one of the caller's reviews
// @Tags reviews
// @Security BearerAuth
// @Param type path string true "accommodation or theme"
// @Param id path string true "Review document id"
// @Success 204 "No Content"
// @Router /reviews/{type}/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	t, ok := reviewTypeFromParam(c)
	if !ok {
		return
	}

	err := h.reviewUseCase.Delete(c.Request.Context(), t, c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReviewNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		case errors.Is(err, usecase.ErrReviewForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

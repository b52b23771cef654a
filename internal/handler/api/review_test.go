//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"curtaincall/internal/domain/review"
	"curtaincall/internal/handler/api"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/usecase"
	"curtaincall/tests/common/httptest"
	usecasemock "curtaincall/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockReviews *usecasemock.MockReviewUseCase
	handler     *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReviews = usecasemock.NewMockReviewUseCase(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockReviews)

	authed := s.router.Group("", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", "hong")
		}
	})
	authed.POST("/reviews/:type", s.handler.Create)
	authed.GET("/reviews/:type", s.handler.List)
	authed.GET("/reviews/:type/my", s.handler.ListMine)
	authed.DELETE("/reviews/:type/:id", s.handler.Delete)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func fixtureReview() *review.Review {
	return &review.Review{
		DocID:     "rv-001",
		Type:      review.TypeTheme,
		UserID:    "hong",
		OrderID:   "00042ABCDEFG",
		SubjectID: "PF001234",
		Content:   "배우들의 열연이 인상적이었습니다",
		Rating:    5,
		ImageURLs: []string{"http://img.example.com/review1.jpg"},
		CreatedAt: time.Date(2026, 4, 27, 10, 0, 0, 0, time.UTC),
	}
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews/theme"
	reqBody := map[string]any{
		"order_id":       "00042ABCDEFG",
		"review_content": "배우들의 열연이 인상적이었습니다",
		"rating":         5,
	}

	s.Run("success: returns 201 with the stored review", func() {
		s.mockReviews.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input usecase.CreateReviewInput) (*review.Review, error) {
				s.Equal(review.TypeTheme, input.Type)
				s.Equal("00042ABCDEFG", input.OrderID)
				return fixtureReview(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("rv-001", response.ID)
		s.Equal("hong", response.UserID)
		s.Equal("PF001234", response.SubjectID)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 for an unknown review type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews/cruise", reqBody, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid review type")
	})

	s.Run("error: 400 for an out-of-range rating", func() {
		body := map[string]any{
			"order_id":       "00042ABCDEFG",
			"review_content": "별로였어요",
			"rating":         6,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 when the order does not exist", func() {
		s.mockReviews.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *ReviewHandlerTestSuite) TestList() {
	s.Run("success: lists all reviews of a type", func() {
		s.mockReviews.EXPECT().ListAll(gomock.Any(), review.TypeTheme).
			Return([]*review.Review{fixtureReview()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/theme", nil, "some-token")

		var response []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: filters by subject when subjectId is given", func() {
		s.mockReviews.EXPECT().ListBySubject(gomock.Any(), review.TypeTheme, "PF001234").
			Return([]*review.Review{fixtureReview()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/theme?subjectId=PF001234", nil, "some-token")

		var response []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("PF001234", response[0].SubjectID)
	})
}

func (s *ReviewHandlerTestSuite) TestListMine() {
	s.Run("success: lists the caller's reviews", func() {
		s.mockReviews.EXPECT().ListByUser(gomock.Any(), review.TypeAccommodation, "hong").
			Return([]*review.Review{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/accommodation/my", nil, "some-token")

		var response []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}

func (s *ReviewHandlerTestSuite) TestDelete() {
	url := "/reviews/theme/rv-001"

	s.Run("success: returns 204", func() {
		s.mockReviews.EXPECT().Delete(gomock.Any(), review.TypeTheme, "rv-001", "hong").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "some-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for another member's review", func() {
		s.mockReviews.EXPECT().Delete(gomock.Any(), review.TypeTheme, "rv-001", "hong").
			Return(usecase.ErrReviewForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 404 for an unknown review", func() {
		s.mockReviews.EXPECT().Delete(gomock.Any(), review.TypeTheme, "rv-001", "hong").
			Return(usecase.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/domain/review"
	"curtaincall/internal/infra"
	"curtaincall/internal/pkg/clock"
	"curtaincall/internal/usecase"
	usecasemock "curtaincall/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reviewMocks struct {
	reviewRepo *usecasemock.MockReviewRepository
	orderRepo  *usecasemock.MockOrderRepository
}

func newReviewUseCase(t *testing.T) (usecase.ReviewUseCase, reviewMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reviewMocks{
		reviewRepo: usecasemock.NewMockReviewRepository(ctrl),
		orderRepo:  usecasemock.NewMockOrderRepository(ctrl),
	}
	uc := usecase.NewReviewUseCase(m.reviewRepo, m.orderRepo, clock.NewMockClock(fixedNow))
	return uc, m
}

func TestReviewCreate(t *testing.T) {
	ctx := context.Background()

	input := usecase.CreateReviewInput{
		Type:    review.TypeTheme,
		OrderID: "00042ABCDEFG",
		Content: "최고의 공연이었습니다",
		Rating:  5,
	}

	t.Run("author and subject come from the order row", func(t *testing.T) {
		uc, m := newReviewUseCase(t)

		m.orderRepo.EXPECT().
			FindOwner(ctx, order.KindPerformance, order.OrderID("00042ABCDEFG")).
			Return("owner1", "PF001234", nil)
		m.reviewRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, rv *review.Review) (string, error) {
				assert.Equal(t, "owner1", rv.UserID)
				assert.Equal(t, "PF001234", rv.SubjectID)
				assert.Equal(t, fixedNow, rv.CreatedAt)
				return "doc-123", nil
			})

		created, err := uc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "doc-123", created.DocID)
	})

	t.Run("accommodation reviews resolve against accommodation orders", func(t *testing.T) {
		uc, m := newReviewUseCase(t)

		accInput := input
		accInput.Type = review.TypeAccommodation
		accInput.OrderID = "000171234567"
		accInput.RoomName = "안채"

		m.orderRepo.EXPECT().
			FindOwner(ctx, order.KindAccommodation, order.OrderID("000171234567")).
			Return("owner1", "126508", nil)
		m.reviewRepo.EXPECT().Create(ctx, gomock.Any()).Return("doc-456", nil)

		created, err := uc.Create(ctx, accInput)
		require.NoError(t, err)
		assert.Equal(t, "안채", created.RoomName)
	})

	t.Run("error: unknown order", func(t *testing.T) {
		uc, m := newReviewUseCase(t)

		m.orderRepo.EXPECT().
			FindOwner(ctx, order.KindPerformance, order.OrderID("00042ABCDEFG")).
			Return("", "", infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := uc.Create(ctx, input)
		assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
	})

	t.Run("error: out-of-range rating", func(t *testing.T) {
		uc, m := newReviewUseCase(t)

		bad := input
		bad.Rating = 6

		m.orderRepo.EXPECT().
			FindOwner(ctx, order.KindPerformance, order.OrderID("00042ABCDEFG")).
			Return("owner1", "PF001234", nil)

		_, err := uc.Create(ctx, bad)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	})
}

func TestReviewDelete(t *testing.T) {
	ctx := context.Background()

	stored := &review.Review{
		DocID:   "doc-123",
		Type:    review.TypeTheme,
		UserID:  "owner1",
		OrderID: "00042ABCDEFG",
		Content: "최고",
		Rating:  5,
	}

	t.Run("owner can delete", func(t *testing.T) {
		uc, m := newReviewUseCase(t)

		m.reviewRepo.EXPECT().FindByDocID(ctx, review.TypeTheme, "doc-123").Return(stored, nil)
		m.reviewRepo.EXPECT().Delete(ctx, review.TypeTheme, "doc-123").Return(nil)

		assert.NoError(t, uc.Delete(ctx, review.TypeTheme, "doc-123", "owner1"))
	})

	t.Run("error: someone else's review", func(t *testing.T) {
		uc, m := newReviewUseCase(t)

		m.reviewRepo.EXPECT().FindByDocID(ctx, review.TypeTheme, "doc-123").Return(stored, nil)

		err := uc.Delete(ctx, review.TypeTheme, "doc-123", "intruder")
		assert.ErrorIs(t, err, usecase.ErrReviewForbidden)
	})

	t.Run("error: already gone", func(t *testing.T) {
		uc, m := newReviewUseCase(t)

		m.reviewRepo.EXPECT().
			FindByDocID(ctx, review.TypeTheme, "doc-404").
			Return(nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound))

		err := uc.Delete(ctx, review.TypeTheme, "doc-404", "owner1")
		assert.ErrorIs(t, err, usecase.ErrReviewNotFound)
	})
}

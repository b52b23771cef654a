//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/infra"
	"curtaincall/internal/infra/gateway"
	"curtaincall/internal/pkg/clock"
	"curtaincall/internal/usecase"
	usecasemock "curtaincall/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func cardOrder() *order.Order {
	return &order.Order{
		UserID:        "member1",
		Kind:          order.KindPerformance,
		PaymentMethod: order.PaymentCard,
		TotalPrice:    150000,
		ImageURL:      "http://example.com/poster.jpg",
		PerformanceID: "PF001234",
		Title:         "헤드윅",
		Venue:         "샤롯데씨어터",
		Date:          time.Date(2026, 4, 10, 19, 30, 0, 0, time.UTC),
		Seats: []order.Seat{
			{SeatID: "A-12", SeatGrade: "VIP", SeatPrice: 150000},
		},
	}
}

func walletOrder() *order.Order {
	o := cardOrder()
	o.PaymentMethod = order.PaymentKakaoPay
	return o
}

type paymentMocks struct {
	orderRepo *usecasemock.MockOrderRepository
	allocator *usecasemock.MockOrderIDAllocator
	wallet    *usecasemock.MockWalletGateway
}

func newPaymentUseCase(t *testing.T) (usecase.PaymentUseCase, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		orderRepo: usecasemock.NewMockOrderRepository(ctrl),
		allocator: usecasemock.NewMockOrderIDAllocator(ctrl),
		wallet:    usecasemock.NewMockWalletGateway(ctrl),
	}
	uc := usecase.NewPaymentUseCase(m.orderRepo, m.allocator, m.wallet, clock.NewMockClock(fixedNow))
	return uc, m
}

func TestSubmitCardOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success: order is stored already paid", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		o := cardOrder()

		m.orderRepo.EXPECT().ReservedSeats(ctx, o.Title, o.Date).Return([]string{"B-01"}, nil)
		m.allocator.EXPECT().Next(ctx, order.KindPerformance).Return(order.OrderID("00042ABCDEFG"), nil)
		m.orderRepo.EXPECT().Create(ctx, o).Return(nil)

		id, err := uc.SubmitCardOrder(ctx, o)
		require.NoError(t, err)
		assert.Equal(t, order.OrderID("00042ABCDEFG"), id)
		assert.Equal(t, order.StatusPaid, o.Status)
		assert.Equal(t, fixedNow, o.OrderDate)
	})

	t.Run("error: wallet order on the card endpoint", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t)

		_, err := uc.SubmitCardOrder(ctx, walletOrder())
		assert.ErrorIs(t, err, usecase.ErrUnsupportedPayment)
	})

	t.Run("error: invalid order never reaches the repository", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t)
		o := cardOrder()
		o.Seats = nil

		_, err := uc.SubmitCardOrder(ctx, o)
		assert.ErrorIs(t, err, order.ErrMissingField)
	})

	t.Run("error: requested seat already sold", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		o := cardOrder()

		m.orderRepo.EXPECT().ReservedSeats(ctx, o.Title, o.Date).Return([]string{"A-12"}, nil)

		_, err := uc.SubmitCardOrder(ctx, o)
		assert.ErrorIs(t, err, usecase.ErrSeatAlreadyTaken)
	})

	t.Run("accommodation orders skip the seat check", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		o := &order.Order{
			UserID:          "member1",
			Kind:            order.KindAccommodation,
			PaymentMethod:   order.PaymentCard,
			TotalPrice:      220000,
			ImageURL:        "http://example.com/hotel.jpg",
			AccommodationID: "126508",
			Name:            "한옥스테이",
			RoomName:        "안채",
			Address:         "전주시 완산구",
			CheckIn:         time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC),
			CheckOut:        time.Date(2026, 5, 3, 11, 0, 0, 0, time.UTC),
			GuestCount:      2,
		}

		m.allocator.EXPECT().Next(ctx, order.KindAccommodation).Return(order.OrderID("000171234567"), nil)
		m.orderRepo.EXPECT().Create(ctx, o).Return(nil)

		id, err := uc.SubmitCardOrder(ctx, o)
		require.NoError(t, err)
		assert.Equal(t, order.OrderID("000171234567"), id)
	})
}

func TestWalletReady(t *testing.T) {
	ctx := context.Background()

	t.Run("success: pending order persisted with the provider tid", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		o := walletOrder()

		m.orderRepo.EXPECT().ReservedSeats(ctx, o.Title, o.Date).Return(nil, nil)
		m.allocator.EXPECT().Next(ctx, order.KindPerformance).Return(order.OrderID("00042ABCDEFG"), nil)
		m.wallet.EXPECT().
			Ready(ctx, "00042ABCDEFG", "member1", "헤드윅", 1, 150000).
			Return(&gateway.KakaoReadyResult{TID: "T123", NextRedirectPC: "https://pay.example/redirect"}, nil)
		m.orderRepo.EXPECT().Create(ctx, o).Return(nil)

		result, err := uc.WalletReady(ctx, o)
		require.NoError(t, err)
		assert.Equal(t, order.OrderID("00042ABCDEFG"), result.OrderID)
		assert.Equal(t, "T123", result.TID)
		assert.Equal(t, "https://pay.example/redirect", result.RedirectURL)

		assert.Equal(t, order.StatusPending, o.Status)
		assert.Equal(t, "T123", o.TID)
	})

	t.Run("error: card order on the wallet endpoint", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t)

		_, err := uc.WalletReady(ctx, cardOrder())
		assert.ErrorIs(t, err, usecase.ErrUnsupportedPayment)
	})

	t.Run("error: gateway failure leaves nothing persisted", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		o := walletOrder()

		m.orderRepo.EXPECT().ReservedSeats(ctx, o.Title, o.Date).Return(nil, nil)
		m.allocator.EXPECT().Next(ctx, order.KindPerformance).Return(order.OrderID("00042ABCDEFG"), nil)
		m.wallet.EXPECT().
			Ready(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("gateway unreachable"))

		_, err := uc.WalletReady(ctx, o)
		assert.Error(t, err)
	})
}

func TestWalletApprove(t *testing.T) {
	ctx := context.Background()
	id := order.OrderID("00042ABCDEFG")

	pendingOrder := func() *order.Order {
		o := walletOrder()
		o.OrderID = id
		o.Status = order.StatusPending
		o.TID = "T123"
		return o
	}

	t.Run("success: pending order flips to paid", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		o := pendingOrder()

		m.orderRepo.EXPECT().FindByID(ctx, order.KindPerformance, id).Return(o, nil)
		m.wallet.EXPECT().
			Approve(ctx, "T123", id.String(), "member1", "pg-token").
			Return(&gateway.KakaoApproveResult{AID: "A1", TID: "T123"}, nil)
		m.orderRepo.EXPECT().MarkPaid(ctx, order.KindPerformance, id).Return(nil)

		approved, err := uc.WalletApprove(ctx, order.KindPerformance, id, "pg-token")
		require.NoError(t, err)
		assert.True(t, approved.IsPaid())
	})

	t.Run("replayed callback short-circuits on a paid order", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		o := pendingOrder()
		require.NoError(t, o.MarkPaid())

		m.orderRepo.EXPECT().FindByID(ctx, order.KindPerformance, id).Return(o, nil)

		approved, err := uc.WalletApprove(ctx, order.KindPerformance, id, "pg-token")
		require.NoError(t, err)
		assert.True(t, approved.IsPaid())
	})

	t.Run("provider already-approved answer is treated as success", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		o := pendingOrder()

		m.orderRepo.EXPECT().FindByID(ctx, order.KindPerformance, id).Return(o, nil)
		m.wallet.EXPECT().
			Approve(ctx, "T123", id.String(), "member1", "pg-token").
			Return(&gateway.KakaoApproveResult{TID: "T123", AlreadyPaid: true}, nil)
		m.orderRepo.EXPECT().MarkPaid(ctx, order.KindPerformance, id).Return(nil)

		approved, err := uc.WalletApprove(ctx, order.KindPerformance, id, "pg-token")
		require.NoError(t, err)
		assert.True(t, approved.IsPaid())
	})

	t.Run("error: order without a readied transaction", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)
		o := pendingOrder()
		o.TID = ""

		m.orderRepo.EXPECT().FindByID(ctx, order.KindPerformance, id).Return(o, nil)

		_, err := uc.WalletApprove(ctx, order.KindPerformance, id, "pg-token")
		assert.ErrorIs(t, err, usecase.ErrPaymentNotReady)
	})

	t.Run("error: unknown order id", func(t *testing.T) {
		uc, m := newPaymentUseCase(t)

		m.orderRepo.EXPECT().
			FindByID(ctx, order.KindPerformance, id).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := uc.WalletApprove(ctx, order.KindPerformance, id, "pg-token")
		assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
	})
}

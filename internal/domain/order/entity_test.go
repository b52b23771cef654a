//go:build unit

package order_test

import (
	"testing"
	"time"

	"curtaincall/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performanceOrder() *order.Order {
	return &order.Order{
		OrderID:       "00042ABCDEFG",
		UserID:        "member1",
		Kind:          order.KindPerformance,
		PaymentMethod: order.PaymentCard,
		Status:        order.StatusPending,
		TotalPrice:    150000,
		OrderDate:     time.Now(),
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

func accommodationOrder() *order.Order {
	return &order.Order{
		OrderID:         "000171234567",
		UserID:          "member1",
		Kind:            order.KindAccommodation,
		PaymentMethod:   order.PaymentKakaoPay,
		Status:          order.StatusPending,
		TotalPrice:      220000,
		OrderDate:       time.Now(),
		ImageURL:        "http://example.com/hotel.jpg",
		AccommodationID: "126508",
		Name:            "한옥스테이",
		RoomName:        "안채",
		Address:         "전주시 완산구",
		CheckIn:         time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2026, 5, 3, 11, 0, 0, 0, time.UTC),
		GuestCount:      2,
		Room:            &order.RoomDetail{RoomID: "R1", RoomCapacity: 4},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*order.Order)
		errIs  error
	}{
		{name: "valid performance order", mutate: func(o *order.Order) {}},
		{
			name:   "unknown kind",
			mutate: func(o *order.Order) { o.Kind = "hotel" },
			errIs:  order.ErrInvalidKind,
		},
		{
			name:   "missing user",
			mutate: func(o *order.Order) { o.UserID = "" },
			errIs:  order.ErrMissingField,
		},
		{
			name:   "negative total price",
			mutate: func(o *order.Order) { o.TotalPrice = -1 },
			errIs:  order.ErrNegativeTotalPrice,
		},
		{
			name:   "missing title",
			mutate: func(o *order.Order) { o.Title = "" },
			errIs:  order.ErrMissingField,
		},
		{
			name:   "no seats",
			mutate: func(o *order.Order) { o.Seats = nil },
			errIs:  order.ErrMissingField,
		},
		{
			name:   "missing image",
			mutate: func(o *order.Order) { o.ImageURL = "" },
			errIs:  order.ErrMissingField,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := performanceOrder()
			tc.mutate(o)

			err := o.Validate()
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}

	t.Run("accommodation requires stay fields", func(t *testing.T) {
		o := accommodationOrder()
		require.NoError(t, o.Validate())

		o.CheckOut = time.Time{}
		assert.ErrorIs(t, o.Validate(), order.ErrMissingField)

		o = accommodationOrder()
		o.GuestCount = 0
		assert.ErrorIs(t, o.Validate(), order.ErrMissingField)

		// A free accommodation order makes no sense; the clients always send
		// the room rate.
		o = accommodationOrder()
		o.TotalPrice = 0
		assert.ErrorIs(t, o.Validate(), order.ErrMissingField)
	})
}

func TestMarkPaid(t *testing.T) {
	t.Run("pending becomes paid", func(t *testing.T) {
		o := performanceOrder()
		require.NoError(t, o.MarkPaid())
		assert.Equal(t, order.StatusPaid, o.Status)
		assert.True(t, o.IsPaid())
	})

	t.Run("paying twice is a no-op", func(t *testing.T) {
		o := performanceOrder()
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.MarkPaid())
		assert.Equal(t, order.StatusPaid, o.Status)
	})

	t.Run("cancelled orders cannot be paid", func(t *testing.T) {
		o := performanceOrder()
		o.Status = order.StatusCancelled
		assert.ErrorIs(t, o.MarkPaid(), order.ErrInvalidStatus)
	})
}

func TestCancel(t *testing.T) {
	t.Run("pending order cancels", func(t *testing.T) {
		o := performanceOrder()
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status)
	})

	t.Run("paid order cancels", func(t *testing.T) {
		o := performanceOrder()
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status)
	})

	t.Run("double cancel fails", func(t *testing.T) {
		o := performanceOrder()
		require.NoError(t, o.Cancel())
		assert.ErrorIs(t, o.Cancel(), order.ErrAlreadyCancelled)
	})
}

func TestSubjectName(t *testing.T) {
	assert.Equal(t, "헤드윅", performanceOrder().SubjectName())
	assert.Equal(t, "한옥스테이", accommodationOrder().SubjectName())
}

func TestEventDate(t *testing.T) {
	p := performanceOrder()
	assert.Equal(t, p.Date, p.EventDate())

	a := accommodationOrder()
	assert.Equal(t, a.CheckIn, a.EventDate())
}

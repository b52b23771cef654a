package order

import (
	"errors"
	"time"
)

var (
	ErrMissingField       = errors.New("required order field missing")
	ErrInvalidKind        = errors.New("invalid order kind")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrNotPending         = errors.New("order is not awaiting payment")
	ErrAlreadyCancelled   = errors.New("order is already cancelled")
	ErrImmutableOrderID   = errors.New("order id cannot change after creation")
	ErrNegativeTotalPrice = errors.New("total price cannot be negative")
)

// Seat is one performance line item.
type Seat struct {
	SeatID    string `json:"seat_id"`
	SeatGrade string `json:"seat_grade"`
	SeatPrice int    `json:"seat_price"`
}

// RoomDetail is the single accommodation line item.
type RoomDetail struct {
	RoomID       string `json:"room_id"`
	RoomCapacity int    `json:"room_capacity"`
}

// Order covers both variants; Kind selects which subject fields are
// meaningful. Prices are whole currency units.
type Order struct {
	OrderID       OrderID
	UserID        string
	Kind          Kind
	PaymentMethod PaymentMethod
	Status        Status
	TotalPrice    int
	OrderDate     time.Time
	ImageURL      string

	// performance subject
	PerformanceID string
	Title         string
	Venue         string
	VenueAddress  string
	Genre         string
	Date          time.Time
	Seats         []Seat

	// accommodation subject
	AccommodationID string
	Name            string
	RoomName        string
	Address         string
	CheckIn         time.Time
	CheckOut        time.Time
	GuestCount      int
	Room            *RoomDetail

	// wallet transaction handle, set when a kakaopay order is readied
	TID string
}

// Validate checks the fields the booking endpoints require before any side
// effect takes place.
func (o *Order) Validate() error {
	if !o.Kind.IsValid() {
		return ErrInvalidKind
	}
	if o.UserID == "" {
		return ErrMissingField
	}
	if o.TotalPrice < 0 {
		return ErrNegativeTotalPrice
	}

	switch o.Kind {
	case KindPerformance:
		if o.Title == "" || o.Venue == "" || o.Date.IsZero() || len(o.Seats) == 0 || o.ImageURL == "" {
			return ErrMissingField
		}
	case KindAccommodation:
		if o.AccommodationID == "" || o.Name == "" || o.RoomName == "" ||
			o.CheckIn.IsZero() || o.CheckOut.IsZero() || o.GuestCount == 0 ||
			o.TotalPrice == 0 || o.Address == "" || o.ImageURL == "" {
			return ErrMissingField
		}
	}
	return nil
}

// MarkPaid is the only forward status transition. Paid orders stay paid, so a
// second call is a no-op; that keeps wallet approval idempotent.
func (o *Order) MarkPaid() error {
	switch o.Status {
	case StatusPaid:
		return nil
	case StatusPending:
		o.Status = StatusPaid
		return nil
	default:
		return ErrInvalidStatus
	}
}

// Cancel moves the order to the terminal cancelled state. The row is kept for
// audit; listings filter it out.
func (o *Order) Cancel() error {
	if o.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	o.Status = StatusCancelled
	return nil
}

func (o *Order) IsPaid() bool {
	return o.Status == StatusPaid
}

// SubjectName is the label the payment gateway shows as the item name.
func (o *Order) SubjectName() string {
	if o.Kind == KindAccommodation {
		return o.Name
	}
	return o.Title
}

// EventDate is the date the lookup formatter filters on: performance date for
// performances, check-in for accommodations.
func (o *Order) EventDate() time.Time {
	if o.Kind == KindAccommodation {
		return o.CheckIn
	}
	return o.Date
}

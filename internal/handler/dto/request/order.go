package request

import (
	"time"

	"curtaincall/internal/domain/order"
)

const dateLayout = "2006-01-02"

type SeatRequest struct {
	SeatID    string `json:"seat_id" binding:"required"`
	SeatGrade string `json:"seat_grade" binding:"required"`
	SeatPrice int    `json:"seat_price" binding:"required"`
}

type RoomRequest struct {
	RoomID       string `json:"room_id" binding:"required"`
	RoomCapacity int    `json:"room_capacity" binding:"required"`
}

// CreateOrderRequest covers both order kinds; Kind decides which subject
// block must be filled. Domain validation does the per-kind field check.
type CreateOrderRequest struct {
	Kind          string `json:"kind" binding:"required,oneof=performance accommodation"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=card kakaopay"`
	TotalPrice    int    `json:"total_price" binding:"required"`
	ImageURL      string `json:"image_url"`

	// performance
	PerformanceID string        `json:"performance_id"`
	Title         string        `json:"title"`
	Venue         string        `json:"venue"`
	VenueAddress  string        `json:"venue_address"`
	Genre         string        `json:"genre"`
	Date          string        `json:"date"`
	Seats         []SeatRequest `json:"seats"`

	// accommodation
	AccommodationID string       `json:"accommodation_id"`
	Name            string       `json:"name"`
	RoomName        string       `json:"room_name"`
	Address         string       `json:"address"`
	CheckIn         string       `json:"check_in"`
	CheckOut        string       `json:"check_out"`
	GuestCount      int          `json:"guest_count"`
	Room            *RoomRequest `json:"room"`
}

func (r *CreateOrderRequest) ToDomain(userID string) (*order.Order, error) {
	o := &order.Order{
		UserID:        userID,
		Kind:          order.Kind(r.Kind),
		PaymentMethod: order.PaymentMethod(r.PaymentMethod),
		TotalPrice:    r.TotalPrice,
		ImageURL:      r.ImageURL,

		PerformanceID: r.PerformanceID,
		Title:         r.Title,
		Venue:         r.Venue,
		VenueAddress:  r.VenueAddress,
		Genre:         r.Genre,

		AccommodationID: r.AccommodationID,
		Name:            r.Name,
		RoomName:        r.RoomName,
		Address:         r.Address,
		GuestCount:      r.GuestCount,
	}

	if r.Date != "" {
		date, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return nil, err
		}
		o.Date = date
	}
	if r.CheckIn != "" {
		checkIn, err := time.Parse(dateLayout, r.CheckIn)
		if err != nil {
			return nil, err
		}
		o.CheckIn = checkIn
	}
	if r.CheckOut != "" {
		checkOut, err := time.Parse(dateLayout, r.CheckOut)
		if err != nil {
			return nil, err
		}
		o.CheckOut = checkOut
	}

	for _, seat := range r.Seats {
		o.Seats = append(o.Seats, order.Seat{
			SeatID:    seat.SeatID,
			SeatGrade: seat.SeatGrade,
			SeatPrice: seat.SeatPrice,
		})
	}
	if r.Room != nil {
		o.Room = &order.RoomDetail{
			RoomID:       r.Room.RoomID,
			RoomCapacity: r.Room.RoomCapacity,
		}
	}

	return o, nil
}

type WalletApproveRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=performance accommodation"`
	OrderID string `json:"order_id" binding:"required"`
	PgToken string `json:"pg_token" binding:"required"`
}

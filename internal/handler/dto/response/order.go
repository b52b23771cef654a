package response

import (
	"time"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/usecase"

	"github.com/jinzhu/copier"
)

type SeatResponse struct {
	SeatID    string `json:"seat_id"`
	SeatGrade string `json:"seat_grade"`
	SeatPrice int    `json:"seat_price"`
}

type RoomResponse struct {
	RoomID       string `json:"room_id"`
	RoomCapacity int    `json:"room_capacity"`
}

type OrderResponse struct {
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id"`
	Kind          string    `json:"kind"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"order_status"`
	TotalPrice    int       `json:"total_price"`
	OrderDate     time.Time `json:"order_date"`
	ImageURL      string    `json:"image_url,omitempty"`

	PerformanceID string         `json:"performance_id,omitempty"`
	Title         string         `json:"title,omitempty"`
	Venue         string         `json:"venue,omitempty"`
	VenueAddress  string         `json:"venue_address,omitempty"`
	Genre         string         `json:"genre,omitempty"`
	Date          string         `json:"date,omitempty"`
	Seats         []SeatResponse `json:"seats,omitempty"`

	AccommodationID string        `json:"accommodation_id,omitempty"`
	Name            string        `json:"name,omitempty"`
	RoomName        string        `json:"room_name,omitempty"`
	Address         string        `json:"address,omitempty"`
	CheckIn         string        `json:"check_in,omitempty"`
	CheckOut        string        `json:"check_out,omitempty"`
	GuestCount      int           `json:"guest_count,omitempty"`
	Room            *RoomResponse `json:"room,omitempty"`
}

const dateLayout = "2006-01-02"

func FromOrder(o *order.Order) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, o)
	resp.OrderID = o.OrderID.String()
	resp.Kind = o.Kind.String()
	resp.PaymentMethod = o.PaymentMethod.String()
	resp.Status = o.Status.String()

	if !o.Date.IsZero() {
		resp.Date = o.Date.Format(dateLayout)
	}
	if !o.CheckIn.IsZero() {
		resp.CheckIn = o.CheckIn.Format(dateLayout)
	}
	if !o.CheckOut.IsZero() {
		resp.CheckOut = o.CheckOut.Format(dateLayout)
	}
	return &resp
}

func FromOrders(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromOrder(o)
	}
	return out
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"order_status"`
}

type WalletReadyResponse struct {
	OrderID        string `json:"order_id"`
	TID            string `json:"tid"`
	NextRedirectPC string `json:"next_redirect_pc_url"`
}

func FromWalletReady(result *usecase.WalletReadyResult) *WalletReadyResponse {
	return &WalletReadyResponse{
		OrderID:        result.OrderID.String(),
		TID:            result.TID,
		NextRedirectPC: result.RedirectURL,
	}
}

type ReservedSeatsResponse struct {
	Seats []string `json:"seats"`
}

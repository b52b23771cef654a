package review

import (
	"errors"
	"time"
)

var (
	ErrInvalidType    = errors.New("invalid review type")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrMissingOrder   = errors.New("review requires an order id")
	ErrMissingContent = errors.New("review content is empty")
)

// Type selects the backing collection.
type Type string

const (
	TypeAccommodation Type = "accommodation"
	TypeTheme         Type = "theme"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeAccommodation, TypeTheme:
		return true
	default:
		return false
	}
}

// Review documents reference their order by id only. UserID is re-derived
// from the order's owner at write time; a caller-supplied value is never
// persisted.
type Review struct {
	DocID     string    `json:"id"`
	Type      Type      `json:"type"`
	UserID    string    `json:"userId"`
	OrderID   string    `json:"orderId"`
	SubjectID string    `json:"subjectId"` // accommodation or performance id
	Content   string    `json:"reviewContent"`
	Rating    int       `json:"rating"`
	ImageURLs []string  `json:"imageUrls"`
	RoomName  string    `json:"roomName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func New(t Type, userID, orderID, subjectID, content string, rating int, imageURLs []string, roomName string, now time.Time) (*Review, error) {
	if !t.IsValid() {
		return nil, ErrInvalidType
	}
	if orderID == "" {
		return nil, ErrMissingOrder
	}
	if content == "" {
		return nil, ErrMissingContent
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	return &Review{
		Type:      t,
		UserID:    userID,
		OrderID:   orderID,
		SubjectID: subjectID,
		Content:   content,
		Rating:    rating,
		ImageURLs: imageURLs,
		RoomName:  roomName,
		CreatedAt: now,
	}, nil
}

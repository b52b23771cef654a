package coupon

import (
	"errors"
	"time"
)

var (
	ErrInvalidUser   = errors.New("coupon requires a user id")
	ErrInvalidAmount = errors.New("coupon amount must be positive")
)

// Coupon is a document keyed by DocID. The welcome variant is keyed
// "{user_id}_welcome" so re-issuing is an idempotent upsert.
type Coupon struct {
	DocID     string    `json:"docId"`
	ID        string    `json:"id"` // owning user id
	Name      string    `json:"name"`
	Grade     string    `json:"grade"`
	Amount    int       `json:"amount"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	WelcomeGrade  = "BRONZE"
	WelcomeAmount = 3000
	WelcomeText   = "신규가입 쿠폰"
	welcomeSuffix = "_welcome"
)

// NewWelcome builds the signup-bonus coupon for a user.
func NewWelcome(userID, name string, now time.Time) (*Coupon, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}
	return &Coupon{
		DocID:     WelcomeDocID(userID),
		ID:        userID,
		Name:      name,
		Grade:     WelcomeGrade,
		Amount:    WelcomeAmount,
		Text:      WelcomeText,
		UpdatedAt: now,
	}, nil
}

func New(docID, userID, name, grade string, amount int, text string, now time.Time) (*Coupon, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if docID == "" {
		docID = userID
	}
	return &Coupon{
		DocID:     docID,
		ID:        userID,
		Name:      name,
		Grade:     grade,
		Amount:    amount,
		Text:      text,
		UpdatedAt: now,
	}, nil
}

func WelcomeDocID(userID string) string {
	return userID + welcomeSuffix
}

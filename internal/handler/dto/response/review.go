package response

import (
	"time"

	"curtaincall/internal/domain/review"

	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	OrderID   string    `json:"orderId"`
	SubjectID string    `json:"subjectId,omitempty"`
	Content   string    `json:"reviewContent"`
	Rating    int       `json:"rating"`
	ImageURLs []string  `json:"imageUrls"`
	RoomName  string    `json:"roomName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromReview(rv *review.Review) *ReviewResponse {
	var resp ReviewResponse
	_ = copier.Copy(&resp, rv)
	resp.ID = rv.DocID
	resp.Type = string(rv.Type)
	if resp.ImageURLs == nil {
		resp.ImageURLs = []string{}
	}
	return &resp
}

func FromReviews(reviews []*review.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, len(reviews))
	for i, rv := range reviews {
		out[i] = FromReview(rv)
	}
	return out
}

package request

import (
	"curtaincall/internal/domain/review"
	"curtaincall/internal/usecase"
)

type CreateReviewRequest struct {
	OrderID   string   `json:"order_id" binding:"required"`
	Content   string   `json:"review_content" binding:"required"`
	Rating    int      `json:"rating" binding:"required,min=1,max=5"`
	ImageURLs []string `json:"image_urls"`
	RoomName  string   `json:"room_name"`
}

func (r *CreateReviewRequest) ToInput(t review.Type) usecase.CreateReviewInput {
	return usecase.CreateReviewInput{
		Type:      t,
		OrderID:   r.OrderID,
		Content:   r.Content,
		Rating:    r.Rating,
		ImageURLs: r.ImageURLs,
		RoomName:  r.RoomName,
	}
}

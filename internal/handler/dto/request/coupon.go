package request

import "curtaincall/internal/usecase"

type IssueCouponRequest struct {
	DocID  string `json:"doc_id"`
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name"`
	Grade  string `json:"grade" binding:"required"`
	Amount int    `json:"amount" binding:"required,gt=0"`
	Text   string `json:"text"`
}

func (r *IssueCouponRequest) ToInput() usecase.IssueCouponInput {
	return usecase.IssueCouponInput{
		DocID:  r.DocID,
		UserID: r.UserID,
		Name:   r.Name,
		Grade:  r.Grade,
		Amount: r.Amount,
		Text:   r.Text,
	}
}

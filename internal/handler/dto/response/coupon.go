package response

import (
	"curtaincall/internal/domain/coupon"

	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	DocID     string `json:"docId"`
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Grade     string `json:"grade"`
	Amount    int    `json:"amount"`
	Text      string `json:"text,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	var resp CouponResponse
	_ = copier.Copy(&resp, c)
	resp.UpdatedAt = c.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
	return &resp
}

func FromCoupons(coupons []*coupon.Coupon) []*CouponResponse {
	out := make([]*CouponResponse, len(coupons))
	for i, c := range coupons {
		out[i] = FromCoupon(c)
	}
	return out
}

type DeleteCouponsResponse struct {
	Deleted int64 `json:"deleted"`
}

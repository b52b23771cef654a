package usecase

import (
	"context"
	"errors"

	"curtaincall/internal/domain/coupon"
	"curtaincall/internal/infra"
	"curtaincall/internal/pkg/clock"
)

var ErrCouponNotFound = errors.New("coupon not found")

type CouponRepository interface {
	Upsert(ctx context.Context, c *coupon.Coupon) error
	ListAll(ctx context.Context) ([]*coupon.Coupon, error)
	ListByUser(ctx context.Context, userID string) ([]*coupon.Coupon, error)
	FindByDocID(ctx context.Context, docID string) (*coupon.Coupon, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type IssueCouponInput struct {
	DocID  string
	UserID string
	Name   string
	Grade  string
	Amount int
	Text   string
}

type CouponUseCase interface {
	IssueWelcome(ctx context.Context, userID, name string) error
	Issue(ctx context.Context, input IssueCouponInput) (*coupon.Coupon, error)
	Find(ctx context.Context, docID string) (*coupon.Coupon, error)
	ListAll(ctx context.Context) ([]*coupon.Coupon, error)
	ListByUser(ctx context.Context, userID string) ([]*coupon.Coupon, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type couponUseCaseImpl struct {
	couponRepo CouponRepository
	clock      clock.Clock
}

func NewCouponUseCase(couponRepo CouponRepository, clk clock.Clock) CouponUseCase {
	return &couponUseCaseImpl{couponRepo: couponRepo, clock: clk}
}

// IssueWelcome writes the signup-bonus coupon. The document id is derived
// from the user id, so calling this twice for the same user rewrites the same
// document instead of duplicating it.
func (c *couponUseCaseImpl) IssueWelcome(ctx context.Context, userID, name string) error {
	welcome, err := coupon.NewWelcome(userID, name, c.clock.Now())
	if err != nil {
		return err
	}
	return c.couponRepo.Upsert(ctx, welcome)
}

// Issue creates an arbitrary coupon, used by the admin surface.
func (c *couponUseCaseImpl) Issue(ctx context.Context, input IssueCouponInput) (*coupon.Coupon, error) {
	cp, err := coupon.New(input.DocID, input.UserID, input.Name, input.Grade, input.Amount, input.Text, c.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := c.couponRepo.Upsert(ctx, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

func (c *couponUseCaseImpl) Find(ctx context.Context, docID string) (*coupon.Coupon, error) {
	cp, err := c.couponRepo.FindByDocID(ctx, docID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return cp, nil
}

func (c *couponUseCaseImpl) ListAll(ctx context.Context) ([]*coupon.Coupon, error) {
	return c.couponRepo.ListAll(ctx)
}

func (c *couponUseCaseImpl) ListByUser(ctx context.Context, userID string) ([]*coupon.Coupon, error) {
	return c.couponRepo.ListByUser(ctx, userID)
}

// DeleteByUser removes every coupon a user holds and reports how many were
// deleted. Zero is not an error; the user may simply hold none.
func (c *couponUseCaseImpl) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return c.couponRepo.DeleteByUser(ctx, userID)
}

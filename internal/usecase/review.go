package usecase

import (
	"context"
	"errors"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/domain/review"
	"curtaincall/internal/infra"
	"curtaincall/internal/pkg/clock"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrReviewForbidden = errors.New("review belongs to another member")
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *review.Review) (string, error)
	FindByDocID(ctx context.Context, t review.Type, docID string) (*review.Review, error)
	ListAll(ctx context.Context, t review.Type) ([]*review.Review, error)
	ListBySubject(ctx context.Context, t review.Type, subjectID string) ([]*review.Review, error)
	ListByUser(ctx context.Context, t review.Type, userID string) ([]*review.Review, error)
	Delete(ctx context.Context, t review.Type, docID string) error
}

type CreateReviewInput struct {
	Type      review.Type
	OrderID   string
	Content   string
	Rating    int
	ImageURLs []string
	RoomName  string
}

type ReviewUseCase interface {
	Create(ctx context.Context, input CreateReviewInput) (*review.Review, error)
	ListAll(ctx context.Context, t review.Type) ([]*review.Review, error)
	ListBySubject(ctx context.Context, t review.Type, subjectID string) ([]*review.Review, error)
	ListByUser(ctx context.Context, t review.Type, userID string) ([]*review.Review, error)
	Delete(ctx context.Context, t review.Type, docID, requesterID string) error
}

type reviewUseCaseImpl struct {
	reviewRepo ReviewRepository
	orderRepo  OrderRepository
	clock      clock.Clock
}

func NewReviewUseCase(reviewRepo ReviewRepository, orderRepo OrderRepository, clk clock.Clock) ReviewUseCase {
	return &reviewUseCaseImpl{
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
		clock:      clk,
	}
}

func orderKindFor(t review.Type) order.Kind {
	if t == review.TypeAccommodation {
		return order.KindAccommodation
	}
	return order.KindPerformance
}

// Create stores a review for an existing order. The author and the reviewed
// subject are re-derived from the order row; whatever the caller claims about
// them is ignored. An unknown order id is rejected outright.
func (r *reviewUseCaseImpl) Create(ctx context.Context, input CreateReviewInput) (*review.Review, error) {
	ownerID, subjectID, err := r.orderRepo.FindOwner(ctx, orderKindFor(input.Type), order.OrderID(input.OrderID))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	rv, err := review.New(
		input.Type, ownerID, input.OrderID, subjectID,
		input.Content, input.Rating, input.ImageURLs, input.RoomName,
		r.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	docID, err := r.reviewRepo.Create(ctx, rv)
	if err != nil {
		return nil, err
	}
	rv.DocID = docID
	return rv, nil
}

func (r *reviewUseCaseImpl) ListAll(ctx context.Context, t review.Type) ([]*review.Review, error) {
	return r.reviewRepo.ListAll(ctx, t)
}

func (r *reviewUseCaseImpl) ListBySubject(ctx context.Context, t review.Type, subjectID string) ([]*review.Review, error) {
	return r.reviewRepo.ListBySubject(ctx, t, subjectID)
}

func (r *reviewUseCaseImpl) ListByUser(ctx context.Context, t review.Type, userID string) ([]*review.Review, error) {
	return r.reviewRepo.ListByUser(ctx, t, userID)
}

// Delete removes the caller's own review only.
func (r *reviewUseCaseImpl) Delete(ctx context.Context, t review.Type, docID, requesterID string) error {
	rv, err := r.reviewRepo.FindByDocID(ctx, t, docID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if rv.UserID != requesterID {
		return ErrReviewForbidden
	}

	if err := r.reviewRepo.Delete(ctx, t, docID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

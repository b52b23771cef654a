package usecase

import (
	"context"
	"errors"
	"time"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/infra"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderForbidden     = errors.New("order belongs to another member")
	ErrOrderNotCancelable = errors.New("order cannot be cancelled")
)

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	ListPerformance(ctx context.Context) ([]*order.Order, error)
	ListAccommodation(ctx context.Context) ([]*order.Order, error)
	ListPerformanceByUser(ctx context.Context, userID string) ([]*order.Order, error)
	ListAccommodationByUser(ctx context.Context, userID string) ([]*order.Order, error)
	LatestPerformanceByUser(ctx context.Context, userID string) (*order.Order, error)
	FindByID(ctx context.Context, kind order.Kind, id order.OrderID) (*order.Order, error)
	FindOwner(ctx context.Context, kind order.Kind, id order.OrderID) (userID, subjectID string, err error)
	ReservedSeats(ctx context.Context, title string, date time.Time) ([]string, error)
	MarkPaid(ctx context.Context, kind order.Kind, id order.OrderID) error
	Cancel(ctx context.Context, kind order.Kind, id order.OrderID) error
}

type OrderIDAllocator interface {
	Next(ctx context.Context, kind order.Kind) (order.OrderID, error)
}

type OrderUseCase interface {
	ListPerformance(ctx context.Context) ([]*order.Order, error)
	ListAccommodation(ctx context.Context) ([]*order.Order, error)
	ListByUser(ctx context.Context, userID string, kind order.Kind) ([]*order.Order, error)
	LatestByUser(ctx context.Context, userID string) (*order.Order, error)
	Find(ctx context.Context, userID string, kind order.Kind, id order.OrderID) (*order.Order, error)
	ReservedSeats(ctx context.Context, title string, date time.Time) ([]string, error)
	Cancel(ctx context.Context, userID string, kind order.Kind, id order.OrderID) error
}

type orderUseCaseImpl struct {
	orderRepo OrderRepository
}

func NewOrderUseCase(orderRepo OrderRepository) OrderUseCase {
	return &orderUseCaseImpl{orderRepo: orderRepo}
}

func (o *orderUseCaseImpl) ListPerformance(ctx context.Context) ([]*order.Order, error) {
	return o.orderRepo.ListPerformance(ctx)
}

func (o *orderUseCaseImpl) ListAccommodation(ctx context.Context) ([]*order.Order, error) {
	return o.orderRepo.ListAccommodation(ctx)
}

func (o *orderUseCaseImpl) ListByUser(ctx context.Context, userID string, kind order.Kind) ([]*order.Order, error) {
	if kind == order.KindAccommodation {
		return o.orderRepo.ListAccommodationByUser(ctx, userID)
	}
	return o.orderRepo.ListPerformanceByUser(ctx, userID)
}

func (o *orderUseCaseImpl) LatestByUser(ctx context.Context, userID string) (*order.Order, error) {
	latest, err := o.orderRepo.LatestPerformanceByUser(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return latest, nil
}

func (o *orderUseCaseImpl) Find(ctx context.Context, userID string, kind order.Kind, id order.OrderID) (*order.Order, error) {
	found, err := o.orderRepo.FindByID(ctx, kind, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if found.UserID != userID {
		return nil, ErrOrderForbidden
	}
	return found, nil
}

func (o *orderUseCaseImpl) ReservedSeats(ctx context.Context, title string, date time.Time) ([]string, error) {
	return o.orderRepo.ReservedSeats(ctx, title, date)
}

// Cancel is a soft transition and only the owner may request it.
func (o *orderUseCaseImpl) Cancel(ctx context.Context, userID string, kind order.Kind, id order.OrderID) error {
	found, err := o.orderRepo.FindByID(ctx, kind, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if found.UserID != userID {
		return ErrOrderForbidden
	}
	if found.Status == order.StatusCancelled {
		return ErrOrderNotCancelable
	}

	if err := o.orderRepo.Cancel(ctx, kind, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotCancelable
		}
		return err
	}
	return nil
}

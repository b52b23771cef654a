package usecase

import (
	"context"
	"errors"
	"log/slog"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/infra"
	"curtaincall/internal/infra/gateway"
	"curtaincall/internal/pkg/clock"
)

var (
	ErrUnsupportedPayment = errors.New("unsupported payment method")
	ErrSeatAlreadyTaken   = errors.New("seat already reserved")
	ErrPaymentNotReady    = errors.New("payment transaction not found")
)

type WalletGateway interface {
	Ready(ctx context.Context, orderID, userID, itemName string, quantity, totalAmount int) (*gateway.KakaoReadyResult, error)
	Approve(ctx context.Context, tid, orderID, userID, pgToken string) (*gateway.KakaoApproveResult, error)
}

// WalletReadyResult is handed back to the client so it can redirect the buyer
// to the wallet authorization page.
type WalletReadyResult struct {
	OrderID     order.OrderID
	TID         string
	RedirectURL string
}

type PaymentUseCase interface {
	SubmitCardOrder(ctx context.Context, o *order.Order) (order.OrderID, error)
	WalletReady(ctx context.Context, o *order.Order) (*WalletReadyResult, error)
	WalletApprove(ctx context.Context, kind order.Kind, id order.OrderID, pgToken string) (*order.Order, error)
}

type paymentUseCaseImpl struct {
	orderRepo OrderRepository
	allocator OrderIDAllocator
	wallet    WalletGateway
	clock     clock.Clock
}

func NewPaymentUseCase(
	orderRepo OrderRepository,
	allocator OrderIDAllocator,
	wallet WalletGateway,
	clk clock.Clock,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		orderRepo: orderRepo,
		allocator: allocator,
		wallet:    wallet,
		clock:     clk,
	}
}

// SubmitCardOrder validates everything before the first write, then persists
// the order already paid. Card capture happens client-side through the PG
// widget, so there is no pending window.
func (p *paymentUseCaseImpl) SubmitCardOrder(ctx context.Context, o *order.Order) (order.OrderID, error) {
	if o.PaymentMethod != order.PaymentCard {
		return "", ErrUnsupportedPayment
	}
	if err := o.Validate(); err != nil {
		return "", err
	}
	if err := p.checkSeats(ctx, o); err != nil {
		return "", err
	}

	id, err := p.allocator.Next(ctx, o.Kind)
	if err != nil {
		return "", err
	}
	o.OrderID = id
	o.Status = order.StatusPaid
	o.OrderDate = p.clock.Now()

	if err := p.orderRepo.Create(ctx, o); err != nil {
		return "", err
	}
	return id, nil
}

// WalletReady registers the transaction with the wallet provider and persists
// the order in the pending state with the provider's tid. If the buyer never
// comes back the row simply stays pending and excluded from paid listings.
func (p *paymentUseCaseImpl) WalletReady(ctx context.Context, o *order.Order) (*WalletReadyResult, error) {
	if o.PaymentMethod != order.PaymentKakaoPay {
		return nil, ErrUnsupportedPayment
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := p.checkSeats(ctx, o); err != nil {
		return nil, err
	}

	id, err := p.allocator.Next(ctx, o.Kind)
	if err != nil {
		return nil, err
	}
	o.OrderID = id
	o.Status = order.StatusPending
	o.OrderDate = p.clock.Now()

	ready, err := p.wallet.Ready(ctx, id.String(), o.UserID, p.itemName(o), p.quantity(o), o.TotalPrice)
	if err != nil {
		return nil, err
	}
	o.TID = ready.TID

	if err := p.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	return &WalletReadyResult{
		OrderID:     id,
		TID:         ready.TID,
		RedirectURL: ready.NextRedirectPC,
	}, nil
}

// WalletApprove captures the readied transaction and flips the order to paid.
// Replayed callbacks are safe: an already-paid order short-circuits, and the
// provider's "already approved" answer is treated as success.
func (p *paymentUseCaseImpl) WalletApprove(ctx context.Context, kind order.Kind, id order.OrderID, pgToken string) (*order.Order, error) {
	o, err := p.orderRepo.FindByID(ctx, kind, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if o.IsPaid() {
		return o, nil
	}
	if o.Status != order.StatusPending || o.TID == "" {
		return nil, ErrPaymentNotReady
	}

	result, err := p.wallet.Approve(ctx, o.TID, id.String(), o.UserID, pgToken)
	if err != nil {
		return nil, err
	}
	if result.AlreadyPaid {
		slog.Info("wallet transaction was already approved", "order_id", id.String(), "tid", o.TID)
	}

	if err := o.MarkPaid(); err != nil {
		return nil, err
	}
	if err := p.orderRepo.MarkPaid(ctx, kind, id); err != nil {
		return nil, err
	}
	return o, nil
}

// checkSeats rejects a performance booking when any requested seat is already
// sold for that title and date.
func (p *paymentUseCaseImpl) checkSeats(ctx context.Context, o *order.Order) error {
	if o.Kind != order.KindPerformance {
		return nil
	}

	taken, err := p.orderRepo.ReservedSeats(ctx, o.Title, o.Date)
	if err != nil {
		return err
	}
	reserved := make(map[string]struct{}, len(taken))
	for _, seatID := range taken {
		reserved[seatID] = struct{}{}
	}
	for _, seat := range o.Seats {
		if _, ok := reserved[seat.SeatID]; ok {
			return ErrSeatAlreadyTaken
		}
	}
	return nil
}

func (p *paymentUseCaseImpl) itemName(o *order.Order) string {
	return o.SubjectName()
}

func (p *paymentUseCaseImpl) quantity(o *order.Order) int {
	if o.Kind == order.KindPerformance {
		return len(o.Seats)
	}
	return 1
}

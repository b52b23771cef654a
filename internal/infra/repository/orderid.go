package repository

import (
	"context"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/infra"
	"curtaincall/internal/infra/db"
)

// OrderIDAllocator hands out identifiers in the historical fixed-width
// format. The 5-digit prefix comes from a per-table sequence, so concurrent
// allocations can no longer collide on the prefix; the 7-character suffix is
// drawn from crypto/rand.
type OrderIDAllocator struct {
	db db.DBTX
}

func NewOrderIDAllocator(db db.DBTX) *OrderIDAllocator {
	return &OrderIDAllocator{db: db}
}

func sequenceFor(kind order.Kind) string {
	if kind == order.KindAccommodation {
		return "accommodation_order_seq"
	}
	return "performance_order_seq"
}

func (a *OrderIDAllocator) Next(ctx context.Context, kind order.Kind) (order.OrderID, error) {
	var seq int64
	err := a.db.QueryRow(ctx, "SELECT nextval($1)", sequenceFor(kind)).Scan(&seq)
	if err != nil {
		return "", infra.WrapRepoErr("failed to allocate order id prefix", err)
	}

	suffix, err := order.RandomSuffix(kind)
	if err != nil {
		return "", infra.WrapRepoErr("failed to generate order id suffix", err)
	}

	id, err := order.NewOrderID(kind, seq, suffix)
	if err != nil {
		return "", infra.WrapRepoErr("failed to build order id", err)
	}
	return id, nil
}

package repository

import (
	"context"
	"log/slog"
	"time"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository persists both order variants. Header and line-item rows are
// written in a single transaction, so a crash can no longer leave an order
// without its seats or room detail.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin order transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback order transaction", "error", rollbackErr)
		}
	}()

	switch o.Kind {
	case order.KindPerformance:
		err = r.createPerformance(ctx, tx, o)
	case order.KindAccommodation:
		err = r.createAccommodation(ctx, tx, o)
	default:
		return infra.WrapRepoErr("unknown order kind", order.ErrInvalidKind)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit order transaction", err)
	}
	return nil
}

func (r *OrderRepository) createPerformance(ctx context.Context, tx pgx.Tx, o *order.Order) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO performance_orders
			(order_id, user_id, performance_id, title, date, venue, venue_address,
			 genre, total_price, payment_method, order_status, order_date, image_url, tid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		o.OrderID.String(), o.UserID, o.PerformanceID, o.Title, o.Date, o.Venue, o.VenueAddress,
		o.Genre, o.TotalPrice, o.PaymentMethod.String(), o.Status.String(), o.OrderDate, o.ImageURL, o.TID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert performance order", err)
	}

	for _, seat := range o.Seats {
		_, err := tx.Exec(ctx, `
			INSERT INTO performance_order_details (order_id, seat_id, seat_grade, seat_price)
			VALUES ($1, $2, $3, $4)`,
			o.OrderID.String(), seat.SeatID, seat.SeatGrade, seat.SeatPrice,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert order seat", err)
		}
	}
	return nil
}

func (r *OrderRepository) createAccommodation(ctx context.Context, tx pgx.Tx, o *order.Order) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO accommodation_orders
			(order_id, user_id, accommodation_id, name, room_name, check_in, check_out,
			 guest_count, total_price, address, payment_method, order_status, order_date, image_url, tid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		o.OrderID.String(), o.UserID, o.AccommodationID, o.Name, o.RoomName, o.CheckIn, o.CheckOut,
		o.GuestCount, o.TotalPrice, o.Address, o.PaymentMethod.String(), o.Status.String(), o.OrderDate, o.ImageURL, o.TID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert accommodation order", err)
	}

	if o.Room != nil {
		_, err := tx.Exec(ctx, `
			INSERT INTO accommodation_order_details (order_id, room_id, room_capacity)
			VALUES ($1, $2, $3)`,
			o.OrderID.String(), o.Room.RoomID, o.Room.RoomCapacity,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert room detail", err)
		}
	}
	return nil
}

const performanceColumns = `
	po.order_id, po.user_id, po.performance_id, po.title, po.date, po.venue,
	po.venue_address, po.genre, po.total_price, po.payment_method,
	po.order_status, po.order_date, po.image_url, po.tid`

const accommodationColumns = `
	ao.order_id, ao.user_id, ao.accommodation_id, ao.name, ao.room_name,
	ao.check_in, ao.check_out, ao.guest_count, ao.total_price, ao.address,
	ao.payment_method, ao.order_status, ao.order_date, ao.image_url, ao.tid`

func scanPerformance(row pgx.Row) (*order.Order, error) {
	var o order.Order
	o.Kind = order.KindPerformance
	var method, status string
	err := row.Scan(
		&o.OrderID, &o.UserID, &o.PerformanceID, &o.Title, &o.Date, &o.Venue,
		&o.VenueAddress, &o.Genre, &o.TotalPrice, &method,
		&status, &o.OrderDate, &o.ImageURL, &o.TID,
	)
	if err != nil {
		return nil, err
	}
	o.PaymentMethod = order.PaymentMethod(method)
	o.Status = order.Status(status)
	return &o, nil
}

func scanAccommodation(row pgx.Row) (*order.Order, error) {
	var o order.Order
	o.Kind = order.KindAccommodation
	var method, status string
	err := row.Scan(
		&o.OrderID, &o.UserID, &o.AccommodationID, &o.Name, &o.RoomName,
		&o.CheckIn, &o.CheckOut, &o.GuestCount, &o.TotalPrice, &o.Address,
		&method, &status, &o.OrderDate, &o.ImageURL, &o.TID,
	)
	if err != nil {
		return nil, err
	}
	o.PaymentMethod = order.PaymentMethod(method)
	o.Status = order.Status(status)
	return &o, nil
}

// listPerformance runs the given header query and attaches seats. Cancelled
// rows are filtered by the callers' WHERE clauses.
func (r *OrderRepository) listPerformance(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list performance orders", err)
	}
	defer rows.Close()

	var orders []*order.Order
	index := make(map[order.OrderID]*order.Order)
	for rows.Next() {
		o, err := scanPerformance(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan performance order", err)
		}
		o.Seats = []order.Seat{}
		orders = append(orders, o)
		index[o.OrderID] = o
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read performance orders", err)
	}

	if len(orders) == 0 {
		return []*order.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID.String()
	}

	seatRows, err := r.pool.Query(ctx, `
		SELECT order_id, seat_id, seat_grade, seat_price
		FROM performance_order_details
		WHERE order_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order seats", err)
	}
	defer seatRows.Close()

	for seatRows.Next() {
		var orderID string
		var seat order.Seat
		if err := seatRows.Scan(&orderID, &seat.SeatID, &seat.SeatGrade, &seat.SeatPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order seat", err)
		}
		if o, ok := index[order.OrderID(orderID)]; ok {
			o.Seats = append(o.Seats, seat)
		}
	}
	if err := seatRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order seats", err)
	}

	return orders, nil
}

func (r *OrderRepository) listAccommodation(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accommodation orders", err)
	}
	defer rows.Close()

	var orders []*order.Order
	index := make(map[order.OrderID]*order.Order)
	for rows.Next() {
		o, err := scanAccommodation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan accommodation order", err)
		}
		orders = append(orders, o)
		index[o.OrderID] = o
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read accommodation orders", err)
	}

	if len(orders) == 0 {
		return []*order.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID.String()
	}

	detailRows, err := r.pool.Query(ctx, `
		SELECT order_id, room_id, room_capacity
		FROM accommodation_order_details
		WHERE order_id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room details", err)
	}
	defer detailRows.Close()

	for detailRows.Next() {
		var orderID string
		var room order.RoomDetail
		if err := detailRows.Scan(&orderID, &room.RoomID, &room.RoomCapacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room detail", err)
		}
		if o, ok := index[order.OrderID(orderID)]; ok {
			o.Room = &room
		}
	}
	if err := detailRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room details", err)
	}

	return orders, nil
}

// ListPerformance returns all non-cancelled performance orders ordered by the
// numeric prefix of order_id descending, i.e. generation order.
func (r *OrderRepository) ListPerformance(ctx context.Context) ([]*order.Order, error) {
	return r.listPerformance(ctx, `
		SELECT`+performanceColumns+`
		FROM performance_orders po
		WHERE po.order_status <> '취소'
		ORDER BY substring(po.order_id from 1 for 5)::int DESC`)
}

func (r *OrderRepository) ListAccommodation(ctx context.Context) ([]*order.Order, error) {
	return r.listAccommodation(ctx, `
		SELECT`+accommodationColumns+`
		FROM accommodation_orders ao
		WHERE ao.order_status <> '취소'
		ORDER BY substring(ao.order_id from 1 for 5)::int DESC`)
}

// ListPerformanceByUser is ordered by performance date descending, matching
// how digests and my-page listings present it.
func (r *OrderRepository) ListPerformanceByUser(ctx context.Context, userID string) ([]*order.Order, error) {
	return r.listPerformance(ctx, `
		SELECT`+performanceColumns+`
		FROM performance_orders po
		WHERE po.user_id = $1 AND po.order_status <> '취소'
		ORDER BY po.date DESC`, userID)
}

func (r *OrderRepository) ListAccommodationByUser(ctx context.Context, userID string) ([]*order.Order, error) {
	return r.listAccommodation(ctx, `
		SELECT`+accommodationColumns+`
		FROM accommodation_orders ao
		WHERE ao.user_id = $1 AND ao.order_status <> '취소'
		ORDER BY ao.check_in DESC`, userID)
}

func (r *OrderRepository) LatestPerformanceByUser(ctx context.Context, userID string) (*order.Order, error) {
	orders, err := r.listPerformance(ctx, `
		SELECT`+performanceColumns+`
		FROM performance_orders po
		WHERE po.user_id = $1 AND po.order_status <> '취소'
		ORDER BY po.order_date DESC
		LIMIT 1`, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, infra.WrapRepoErr("no recent order for user", pgx.ErrNoRows, infra.KindNotFound)
	}
	return orders[0], nil
}

func (r *OrderRepository) FindByID(ctx context.Context, kind order.Kind, id order.OrderID) (*order.Order, error) {
	var (
		orders []*order.Order
		err    error
	)
	switch kind {
	case order.KindPerformance:
		orders, err = r.listPerformance(ctx, `
			SELECT`+performanceColumns+`
			FROM performance_orders po
			WHERE po.order_id = $1`, id.String())
	case order.KindAccommodation:
		orders, err = r.listAccommodation(ctx, `
			SELECT`+accommodationColumns+`
			FROM accommodation_orders ao
			WHERE ao.order_id = $1`, id.String())
	default:
		return nil, infra.WrapRepoErr("unknown order kind", order.ErrInvalidKind)
	}
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return orders[0], nil
}

// FindOwner resolves the owning user and subject id for a review write.
func (r *OrderRepository) FindOwner(ctx context.Context, kind order.Kind, id order.OrderID) (userID, subjectID string, err error) {
	var query string
	switch kind {
	case order.KindPerformance:
		query = `SELECT user_id, COALESCE(performance_id, '') FROM performance_orders WHERE order_id = $1`
	case order.KindAccommodation:
		query = `SELECT user_id, accommodation_id FROM accommodation_orders WHERE order_id = $1`
	default:
		return "", "", infra.WrapRepoErr("unknown order kind", order.ErrInvalidKind)
	}

	err = r.pool.QueryRow(ctx, query, id.String()).Scan(&userID, &subjectID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", "", infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return "", "", infra.WrapRepoErr("failed to resolve order owner", err)
	}
	return userID, subjectID, nil
}

// ReservedSeats lists seat ids already sold for a performance on a date.
func (r *OrderRepository) ReservedSeats(ctx context.Context, title string, date time.Time) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT pod.seat_id
		FROM performance_orders po
		JOIN performance_order_details pod ON po.order_id = pod.order_id
		WHERE po.title = $1 AND po.date = $2 AND po.order_status <> '취소'`,
		title, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reserved seats", err)
	}
	defer rows.Close()

	seats := []string{}
	for rows.Next() {
		var seatID string
		if err := rows.Scan(&seatID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reserved seat", err)
		}
		seats = append(seats, seatID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reserved seats", err)
	}
	return seats, nil
}

func tableFor(kind order.Kind) string {
	if kind == order.KindAccommodation {
		return "accommodation_orders"
	}
	return "performance_orders"
}

// MarkPaid flips a pending wallet order to paid. Updating an already-paid row
// matches zero rows only when the id is unknown; a paid row is counted as
// updated so approval stays idempotent.
func (r *OrderRepository) MarkPaid(ctx context.Context, kind order.Kind, id order.OrderID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE `+tableFor(kind)+` SET order_status = '결제완료' WHERE order_id = $1 AND order_status IN ('결제대기', '결제완료')`,
		id.String())
	if err != nil {
		return infra.WrapRepoErr("failed to mark order paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// Cancel is a soft transition; the row is retained with status '취소'.
func (r *OrderRepository) Cancel(ctx context.Context, kind order.Kind, id order.OrderID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE `+tableFor(kind)+` SET order_status = '취소' WHERE order_id = $1 AND order_status <> '취소'`,
		id.String())
	if err != nil {
		return infra.WrapRepoErr("failed to cancel order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found or already cancelled", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

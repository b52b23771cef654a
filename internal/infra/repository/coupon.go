package repository

import (
	"context"

	"curtaincall/internal/domain/coupon"
	"curtaincall/internal/infra"
	"curtaincall/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

// CouponRepository keeps document semantics over a relational table: rows are
// keyed by doc_id and Upsert replaces the whole document.
type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(db db.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

// Upsert writes the full document under doc_id, so re-issuing the welcome
// coupon for the same user is a no-op rewrite rather than a duplicate.
func (r *CouponRepository) Upsert(ctx context.Context, c *coupon.Coupon) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO coupons (doc_id, user_id, name, grade, amount, text, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (doc_id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			name = EXCLUDED.name,
			grade = EXCLUDED.grade,
			amount = EXCLUDED.amount,
			text = EXCLUDED.text,
			updated_at = EXCLUDED.updated_at`,
		c.DocID, c.ID, c.Name, c.Grade, c.Amount, c.Text, c.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert coupon", err)
	}
	return nil
}

const couponColumns = `doc_id, user_id, COALESCE(name, ''), grade, amount, COALESCE(text, ''), updated_at`

func (r *CouponRepository) list(ctx context.Context, query string, args ...any) ([]*coupon.Coupon, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	coupons := []*coupon.Coupon{}
	for rows.Next() {
		var c coupon.Coupon
		if err := rows.Scan(&c.DocID, &c.ID, &c.Name, &c.Grade, &c.Amount, &c.Text, &c.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon", err)
		}
		coupons = append(coupons, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupons", err)
	}
	return coupons, nil
}

func (r *CouponRepository) ListAll(ctx context.Context) ([]*coupon.Coupon, error) {
	return r.list(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY updated_at DESC`)
}

func (r *CouponRepository) ListByUser(ctx context.Context, userID string) ([]*coupon.Coupon, error) {
	return r.list(ctx, `SELECT `+couponColumns+` FROM coupons WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
}

func (r *CouponRepository) FindByDocID(ctx context.Context, docID string) (*coupon.Coupon, error) {
	var c coupon.Coupon
	err := r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE doc_id = $1`, docID,
	).Scan(&c.DocID, &c.ID, &c.Name, &c.Grade, &c.Amount, &c.Text, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return &c, nil
}

// DeleteByUser removes every coupon document owned by a user.
func (r *CouponRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE user_id = $1`, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete coupons", err)
	}
	return tag.RowsAffected(), nil
}

package repository

import (
	"context"
	"errors"

	"curtaincall/internal/infra"
	"curtaincall/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type AdminRepository struct {
	db db.DBTX
}

func NewAdminRepository(db db.DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

// FindPasswordHash returns the stored bcrypt hash for the admin id.
func (r *AdminRepository) FindPasswordHash(ctx context.Context, adminID string) (string, error) {
	var hash string
	err := r.db.QueryRow(ctx,
		`SELECT password FROM admins WHERE admin_id = $1`, adminID,
	).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find admin", err)
	}
	return hash, nil
}

package repository

import (
	"context"
	"encoding/json"

	"curtaincall/internal/domain/review"
	"curtaincall/internal/infra"
	"curtaincall/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(db db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func reviewTable(t review.Type) string {
	if t == review.TypeTheme {
		return "theme_reviews"
	}
	return "accommodation_reviews"
}

// Create assigns a fresh document id and returns it.
func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) (string, error) {
	docID := uuid.NewString()

	imageURLs := rv.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	urlsJSON, err := json.Marshal(imageURLs)
	if err != nil {
		return "", infra.WrapRepoErr("failed to encode image urls", err)
	}

	if rv.Type == review.TypeAccommodation {
		_, err = r.db.Exec(ctx, `
			INSERT INTO accommodation_reviews
				(id, user_id, order_id, subject_id, content, rating, image_urls, room_name, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			docID, rv.UserID, rv.OrderID, rv.SubjectID, rv.Content, rv.Rating, urlsJSON, rv.RoomName, rv.CreatedAt,
		)
	} else {
		_, err = r.db.Exec(ctx, `
			INSERT INTO theme_reviews
				(id, user_id, order_id, subject_id, content, rating, image_urls, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			docID, rv.UserID, rv.OrderID, rv.SubjectID, rv.Content, rv.Rating, urlsJSON, rv.CreatedAt,
		)
	}
	if err != nil {
		return "", infra.WrapRepoErr("failed to insert review", err)
	}
	return docID, nil
}

func (r *ReviewRepository) list(ctx context.Context, t review.Type, query string, args ...any) ([]*review.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	reviews := []*review.Review{}
	for rows.Next() {
		rv, err := scanReview(rows, t)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reviews", err)
	}
	return reviews, nil
}

func scanReview(row pgx.Row, t review.Type) (*review.Review, error) {
	var rv review.Review
	rv.Type = t
	var urlsJSON []byte

	var err error
	if t == review.TypeAccommodation {
		err = row.Scan(&rv.DocID, &rv.UserID, &rv.OrderID, &rv.SubjectID,
			&rv.Content, &rv.Rating, &urlsJSON, &rv.RoomName, &rv.CreatedAt)
	} else {
		err = row.Scan(&rv.DocID, &rv.UserID, &rv.OrderID, &rv.SubjectID,
			&rv.Content, &rv.Rating, &urlsJSON, &rv.CreatedAt)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(urlsJSON, &rv.ImageURLs); err != nil {
		return nil, err
	}
	return &rv, nil
}

func reviewColumns(t review.Type) string {
	if t == review.TypeAccommodation {
		return `id, user_id, order_id, COALESCE(subject_id, ''), content, rating, image_urls, COALESCE(room_name, ''), created_at`
	}
	return `id, user_id, order_id, COALESCE(subject_id, ''), content, rating, image_urls, created_at`
}

func (r *ReviewRepository) ListAll(ctx context.Context, t review.Type) ([]*review.Review, error) {
	return r.list(ctx, t,
		`SELECT `+reviewColumns(t)+` FROM `+reviewTable(t)+` ORDER BY created_at DESC`)
}

// ListBySubject returns reviews for one accommodation or performance.
func (r *ReviewRepository) ListBySubject(ctx context.Context, t review.Type, subjectID string) ([]*review.Review, error) {
	return r.list(ctx, t,
		`SELECT `+reviewColumns(t)+` FROM `+reviewTable(t)+` WHERE subject_id = $1 ORDER BY created_at DESC`,
		subjectID)
}

func (r *ReviewRepository) ListByUser(ctx context.Context, t review.Type, userID string) ([]*review.Review, error) {
	return r.list(ctx, t,
		`SELECT `+reviewColumns(t)+` FROM `+reviewTable(t)+` WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
}

func (r *ReviewRepository) FindByDocID(ctx context.Context, t review.Type, docID string) (*review.Review, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+reviewColumns(t)+` FROM `+reviewTable(t)+` WHERE id = $1`, docID)
	rv, err := scanReview(row, t)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return rv, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, t review.Type, docID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM `+reviewTable(t)+` WHERE id = $1`, docID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

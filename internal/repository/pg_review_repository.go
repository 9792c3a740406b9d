package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shutterfolio/backend/internal/model"
)

// PgReviewRepository は ReviewRepository の PostgreSQL 実装
type PgReviewRepository struct {
	pool *pgxpool.Pool
}

// NewPgReviewRepository は PgReviewRepository を生成する
func NewPgReviewRepository(pool *pgxpool.Pool) *PgReviewRepository {
	return &PgReviewRepository{pool: pool}
}

var _ ReviewRepository = (*PgReviewRepository)(nil)

func (r *PgReviewRepository) List(ctx context.Context) ([]*model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, name, rating, date_label, body FROM reviews ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Rating, &rv.Date, &rv.Text); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rv)
	}
	return reviews, rows.Err()
}

func (r *PgReviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO reviews (name, rating, date_label, body)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id::text`,
		review.Name, review.Rating, review.Date, review.Text,
	).Scan(&review.ID)
}

func (r *PgReviewRepository) Delete(ctx context.Context, id string) error {
	return deleteByUUID(ctx, r.pool, "reviews", id)
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shutterfolio/backend/internal/model"
)

// PgPortfolioRepository は PortfolioRepository の PostgreSQL 実装
type PgPortfolioRepository struct {
	pool *pgxpool.Pool
}

// NewPgPortfolioRepository は PgPortfolioRepository を生成する
func NewPgPortfolioRepository(pool *pgxpool.Pool) *PgPortfolioRepository {
	return &PgPortfolioRepository{pool: pool}
}

var _ PortfolioRepository = (*PgPortfolioRepository)(nil)

const portfolioSelectCols = `id::text, title, category, image, link, description`

// List はギャラリー項目を全件返す（挿入順）
func (r *PgPortfolioRepository) List(ctx context.Context) ([]*model.PortfolioItem, error) {
	return r.query(ctx, `SELECT `+portfolioSelectCols+` FROM portfolio_items ORDER BY created_at`)
}

// ListLimited は最大 n 件を返す。並び順は保証しない
func (r *PgPortfolioRepository) ListLimited(ctx context.Context, n int) ([]*model.PortfolioItem, error) {
	return r.query(ctx, `SELECT `+portfolioSelectCols+` FROM portfolio_items LIMIT $1`, n)
}

func (r *PgPortfolioRepository) query(ctx context.Context, sql string, args ...any) ([]*model.PortfolioItem, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.PortfolioItem
	for rows.Next() {
		var it model.PortfolioItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Category, &it.Image, &it.Link, &it.Description); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Create は項目を追加し、item.ID を RETURNING から設定する
func (r *PgPortfolioRepository) Create(ctx context.Context, item *model.PortfolioItem) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO portfolio_items (title, category, image, link, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id::text`,
		item.Title, item.Category, item.Image, item.Link, item.Description,
	).Scan(&item.ID)
}

// Delete は項目を削除する
func (r *PgPortfolioRepository) Delete(ctx context.Context, id string) error {
	return deleteByUUID(ctx, r.pool, "portfolio_items", id)
}

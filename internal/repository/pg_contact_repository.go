package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shutterfolio/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row and populates msg.ID from the
// RETURNING clause. created_at comes from msg when set, otherwise NOW().
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	var createdAt *time.Time
	if t, ok := msg.CreatedAt.Time(); ok {
		createdAt = &t
	}
	var stored time.Time
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, phone, event_date, message, created_at)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, COALESCE($6, NOW()))
		 RETURNING id::text, created_at`,
		msg.Name, msg.Email, msg.Phone, msg.Date, msg.Message, createdAt,
	).Scan(&msg.ID, &stored)
	if err != nil {
		return err
	}
	msg.CreatedAt = model.NativeTimestamp(stored)
	return nil
}

// List returns contact messages newest first, paginated by limit/offset.
// A non-positive limit returns every message.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	var limit *int
	if opts.Limit > 0 {
		limit = &opts.Limit
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id::text, name, email, COALESCE(phone, ''), COALESCE(event_date, ''), message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Date, &m.Message, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = model.NativeTimestamp(createdAt)
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// Delete removes one message by id.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByUUID(ctx, r.pool, "contact_messages", id)
}

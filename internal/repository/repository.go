package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// invalid_text_representation: the id is not a UUID.
const pgInvalidTextRepresentation = "22P02"

// NewPool は PostgreSQL 接続プールを生成する
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	return pool, nil
}

// Store bundles the repositories of one backend.
type Store struct {
	DB        DB
	Portfolio PortfolioRepository
	Contacts  ContactRepository
	Reviews   ReviewRepository
	// Admins is nil for backends that delegate accounts to an external
	// identity provider.
	Admins AdminRepository

	close func()
}

// Close releases the backend's connections.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// deleteByUUID deletes one row of table by primary key. An id that is not
// a UUID cannot exist and is reported as ErrNotFound.
func deleteByUUID(ctx context.Context, pool *pgxpool.Pool, table, id string) error {
	tag, err := pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1::uuid`, id)
	if isInvalidUUID(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation
}

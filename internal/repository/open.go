package repository

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendPostgres  = "postgres"
	BackendSQLite    = "sqlite"
	BackendFirestore = "firestore"
)

// OpenOptions selects and configures a store backend.
type OpenOptions struct {
	Backend string

	DatabaseURL string // postgres
	SQLitePath  string // sqlite

	FirestoreProjectID   string
	FirestoreCredentials string
}

// Open connects to the configured backend and wires its repositories.
func Open(ctx context.Context, opts OpenOptions) (*Store, error) {
	switch opts.Backend {
	case BackendPostgres, "":
		pool, err := NewPool(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return &Store{
			DB:        pool,
			Portfolio: NewPgPortfolioRepository(pool),
			Contacts:  NewPgContactRepository(pool),
			Reviews:   NewPgReviewRepository(pool),
			Admins:    NewPgAdminRepository(pool),
			close:     pool.Close,
		}, nil

	case BackendSQLite:
		db, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		return &Store{
			DB:        db,
			Portfolio: db.Portfolio(),
			Contacts:  db.Contacts(),
			Reviews:   db.Reviews(),
			Admins:    db.Admins(),
			close:     func() { _ = db.Close() },
		}, nil

	case BackendFirestore:
		fs, err := OpenFirestore(ctx, opts.FirestoreProjectID, opts.FirestoreCredentials)
		if err != nil {
			return nil, err
		}
		return &Store{
			DB:        fs,
			Portfolio: fs.Portfolio(),
			Contacts:  fs.Contacts(),
			Reviews:   fs.Reviews(),
			close:     func() { _ = fs.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shutterfolio/backend/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDB wraps a SQLite database holding all collections in one file.
type SQLiteDB struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the schema.
func OpenSQLite(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if err := initSQLiteSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteDB{db: db}, nil
}

func initSQLiteSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS portfolio_items (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		image TEXT NOT NULL,
		link TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contact_messages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		event_date TEXT,
		message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		date_label TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS admins (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_contact_messages_created ON contact_messages(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Ping implements DB.
func (s *SQLiteDB) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Portfolio returns the portfolio repository.
func (s *SQLiteDB) Portfolio() *SQLitePortfolioRepository {
	return &SQLitePortfolioRepository{db: s.db}
}

// Contacts returns the contact message repository.
func (s *SQLiteDB) Contacts() *SQLiteContactRepository {
	return &SQLiteContactRepository{db: s.db}
}

// Reviews returns the review repository.
func (s *SQLiteDB) Reviews() *SQLiteReviewRepository {
	return &SQLiteReviewRepository{db: s.db}
}

// Admins returns the admin account repository.
func (s *SQLiteDB) Admins() *SQLiteAdminRepository {
	return &SQLiteAdminRepository{db: s.db}
}

// Fixed width so that created_at sorts lexically in time order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func nowText() string {
	return time.Now().UTC().Format(sqliteTimeLayout)
}

// parseStoredTime converts a created_at column into a Timestamp. Rows written
// by this package are RFC 3339; anything else is kept verbatim.
func parseStoredTime(s string) model.Timestamp {
	if t, err := time.Parse(sqliteTimeLayout, s); err == nil {
		return model.NativeTimestamp(t)
	}
	return model.ISOTimestamp(s)
}

func deleteByID(ctx context.Context, db *sql.DB, table, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SQLitePortfolioRepository implements PortfolioRepository using SQLite.
type SQLitePortfolioRepository struct {
	db *sql.DB
}

var _ PortfolioRepository = (*SQLitePortfolioRepository)(nil)

func (r *SQLitePortfolioRepository) List(ctx context.Context) ([]*model.PortfolioItem, error) {
	return r.query(ctx, `SELECT id, title, category, image, link, description FROM portfolio_items ORDER BY rowid`)
}

func (r *SQLitePortfolioRepository) ListLimited(ctx context.Context, n int) ([]*model.PortfolioItem, error) {
	return r.query(ctx, `SELECT id, title, category, image, link, description FROM portfolio_items ORDER BY rowid LIMIT ?`, n)
}

func (r *SQLitePortfolioRepository) query(ctx context.Context, q string, args ...any) ([]*model.PortfolioItem, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
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

func (r *SQLitePortfolioRepository) Create(ctx context.Context, item *model.PortfolioItem) error {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO portfolio_items (id, title, category, image, link, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, item.Title, item.Category, item.Image, item.Link, item.Description, nowText(),
	)
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

func (r *SQLitePortfolioRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "portfolio_items", id)
}

// SQLiteContactRepository implements ContactRepository using SQLite.
type SQLiteContactRepository struct {
	db *sql.DB
}

var _ ContactRepository = (*SQLiteContactRepository)(nil)

func (r *SQLiteContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	created := msg.CreatedAt
	if created.IsZero() {
		created = model.Now()
	}
	t, _ := created.Time()
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, phone, event_date, message, created_at)
		 VALUES (?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?)`,
		id, msg.Name, msg.Email, msg.Phone, msg.Date, msg.Message, t.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return err
	}
	msg.ID = id
	msg.CreatedAt = model.NativeTimestamp(t.UTC())
	return nil
}

// List returns messages newest first. A non-positive limit returns all rows.
func (r *SQLiteContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), COALESCE(event_date, ''), message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ? OFFSET ?`,
		limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		var created string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Date, &m.Message, &created); err != nil {
			return nil, err
		}
		m.CreatedAt = parseStoredTime(created)
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

func (r *SQLiteContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "contact_messages", id)
}

// SQLiteReviewRepository implements ReviewRepository using SQLite.
type SQLiteReviewRepository struct {
	db *sql.DB
}

var _ ReviewRepository = (*SQLiteReviewRepository)(nil)

func (r *SQLiteReviewRepository) List(ctx context.Context) ([]*model.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, rating, date_label, body FROM reviews ORDER BY rowid`)
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

func (r *SQLiteReviewRepository) Create(ctx context.Context, review *model.Review) error {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (id, name, rating, date_label, body, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, review.Name, review.Rating, review.Date, review.Text, nowText(),
	)
	if err != nil {
		return err
	}
	review.ID = id
	return nil
}

func (r *SQLiteReviewRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "reviews", id)
}

// SQLiteAdminRepository implements AdminRepository using SQLite.
type SQLiteAdminRepository struct {
	db *sql.DB
}

var _ AdminRepository = (*SQLiteAdminRepository)(nil)

func (r *SQLiteAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	var created string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM admins WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email)),
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if t, ok := parseStoredTime(created).Time(); ok {
		a.CreatedAt = t
	}
	return &a, nil
}

func (r *SQLiteAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	admin.ID = uuid.NewString()
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	admin.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		admin.ID, admin.Email, admin.PasswordHash, admin.CreatedAt.Format(sqliteTimeLayout),
	)
	return err
}

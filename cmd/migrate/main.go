package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shutterfolio/backend/internal/config"
	"github.com/shutterfolio/backend/internal/logging"
	"github.com/shutterfolio/backend/internal/repository"
	"github.com/shutterfolio/backend/internal/service"
	"golang.org/x/term"
)

// adminPasswordEnv lets scripts create an admin without a terminal prompt.
const adminPasswordEnv = "ADMIN_PASSWORD"

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)       差分マイグレーションを適用（postgres）
  reset           全テーブルを DROP し、集約スキーマで再作成（postgres）
  fresh           全テーブルを DROP し、全マイグレーションを順番に適用（postgres）
  admin <email>   local 認証用の管理者アカウントを作成（postgres / sqlite）
                  パスワードは ADMIN_PASSWORD またはプロンプトから読む`)
	os.Exit(1)
}

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	ctx := context.Background()

	if cmd == "admin" {
		if len(os.Args) != 3 {
			usage()
		}
		runCreateAdmin(ctx, cfg, os.Args[2])
		return
	}

	if cfg.StoreBackend != repository.BackendPostgres {
		logging.Fatal("SQL migrations only apply to the postgres backend; sqlite creates its schema on open",
			"backend", cfg.StoreBackend)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	migrationDir := findMigrationDir()

	switch cmd {
	case "":
		runIncremental(ctx, pool, migrationDir)
	case "reset":
		runDropAll(ctx, pool, migrationDir)
		runConsolidated(ctx, pool, migrationDir)
	case "fresh":
		runDropAll(ctx, pool, migrationDir)
		runIncremental(ctx, pool, migrationDir)
	default:
		usage()
	}
}

func findMigrationDir() string {
	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../migrations"
	}
	return dir
}

// collectUpFiles は .up.sql ファイル名をソート済みで返す
func collectUpFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// migrationName は "001_init.up.sql" を "001_init" にする
func migrationName(filename string) string {
	return strings.TrimSuffix(filename, ".up.sql")
}

func mustCollectUpFiles(dir string) []string {
	files, err := collectUpFiles(dir)
	if err != nil {
		logging.Fatal("collect migrations failed", "dir", dir, "error", err)
	}
	return files
}

func ensureSchemaMigrations(ctx context.Context, pool *pgxpool.Pool) {
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		logging.Fatal("create schema_migrations failed", "error", err)
	}
}

// ---------------------------------------------------------------------------
// (default) 差分マイグレーション
// ---------------------------------------------------------------------------
func runIncremental(ctx context.Context, pool *pgxpool.Pool, dir string) {
	ensureSchemaMigrations(ctx, pool)

	applied := 0
	for _, filename := range mustCollectUpFiles(dir) {
		name := migrationName(filename)

		var exists bool
		_ = pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", name).Scan(&exists)
		if exists {
			continue
		}

		sql, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			logging.Fatal("read migration failed", "migration", name, "error", err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			logging.Fatal("migration failed", "migration", name, "error", err)
		}
		if _, err := pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			logging.Fatal("record migration failed", "migration", name, "error", err)
		}
		applied++
		slog.Info("migration completed", "migration", name)
	}

	if applied == 0 {
		slog.Info("all migrations already applied")
	} else {
		slog.Info("migrations completed", "count", applied)
	}
}

// ---------------------------------------------------------------------------
// 全テーブル DROP
// ---------------------------------------------------------------------------
func runDropAll(ctx context.Context, pool *pgxpool.Pool, dir string) {
	slog.Info("dropping all tables")
	execFile(ctx, pool, filepath.Join(dir, "000_drop_all.sql"))
	slog.Info("all tables dropped")
}

// ---------------------------------------------------------------------------
// 集約スキーマで再作成
// ---------------------------------------------------------------------------
func runConsolidated(ctx context.Context, pool *pgxpool.Pool, dir string) {
	slog.Info("applying consolidated schema")
	execFile(ctx, pool, filepath.Join(dir, "000_consolidated.sql"))

	// 全マイグレーションを適用済みとして記録
	ensureSchemaMigrations(ctx, pool)
	upFiles := mustCollectUpFiles(dir)
	for _, filename := range upFiles {
		_, _ = pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", migrationName(filename))
	}
	slog.Info("consolidated schema applied", "migrations_marked", len(upFiles))
}

func execFile(ctx context.Context, pool *pgxpool.Pool, path string) {
	sql, err := os.ReadFile(path)
	if err != nil {
		logging.Fatal("read sql file failed", "file", path, "error", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		logging.Fatal("exec sql file failed", "file", path, "error", err)
	}
}

// ---------------------------------------------------------------------------
// 管理者アカウント作成
// ---------------------------------------------------------------------------
func runCreateAdmin(ctx context.Context, cfg *config.Config, email string) {
	store, err := repository.Open(ctx, repository.OpenOptions{
		Backend:     cfg.StoreBackend,
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
	})
	if err != nil {
		logging.Fatal("failed to open store", "backend", cfg.StoreBackend, "error", err)
	}
	defer store.Close()
	if store.Admins == nil {
		logging.Fatal("backend has no admins table", "backend", cfg.StoreBackend)
	}

	password, err := readPassword(os.Getenv, os.Stdin)
	if err != nil {
		logging.Fatal("read password failed", "error", err)
	}
	admin, err := service.CreateAdmin(ctx, store.Admins, email, password)
	if err != nil {
		logging.Fatal("create admin failed", "email", email, "error", err)
	}
	slog.Info("admin created", "admin_id", admin.ID, "email", admin.Email)
}

// readPassword は ADMIN_PASSWORD を優先し、無ければ端末から echo 無しで読む。
// 端末でない場合（パイプ）は 1 行を読む
func readPassword(getenv func(string) string, in *os.File) (string, error) {
	if p := getenv(adminPasswordEnv); p != "" {
		return p, nil
	}
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

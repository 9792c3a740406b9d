package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCollectUpFiles_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_admins.up.sql", "001_init.down.sql", "001_init.up.sql", "000_drop_all.sql", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "003_dir.up.sql"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := collectUpFiles(dir)
	if err != nil {
		t.Fatalf("collectUpFiles: %v", err)
	}
	if got := strings.Join(files, ","); got != "001_init.up.sql,002_admins.up.sql" {
		t.Errorf("unexpected files %q", got)
	}
}

func TestCollectUpFiles_MissingDir(t *testing.T) {
	if _, err := collectUpFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing dir")
	}
}

// The shipped migrations must match what the consolidated schema marks as applied.
func TestRepositoryMigrations(t *testing.T) {
	files, err := collectUpFiles("../../migrations")
	if err != nil {
		t.Fatalf("collectUpFiles: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected migrations in ../../migrations")
	}
	consolidated, err := os.ReadFile("../../migrations/000_consolidated.sql")
	if err != nil {
		t.Fatalf("read consolidated: %v", err)
	}
	for _, table := range []string{"portfolio_items", "contact_messages", "reviews", "admins"} {
		if !strings.Contains(string(consolidated), "CREATE TABLE "+table) && !strings.Contains(string(consolidated), "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("consolidated schema missing table %s", table)
		}
	}
}

func TestMigrationName(t *testing.T) {
	if got := migrationName("001_init.up.sql"); got != "001_init" {
		t.Errorf("expected 001_init, got %q", got)
	}
}

func TestReadPassword_FromEnv(t *testing.T) {
	getenv := func(k string) string {
		if k == adminPasswordEnv {
			return "s3cret-pass"
		}
		return ""
	}
	got, err := readPassword(getenv, os.Stdin)
	if err != nil || got != "s3cret-pass" {
		t.Errorf("expected env password, got %q, %v", got, err)
	}
}

func TestReadPassword_FromPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	_, _ = w.WriteString("piped-password\n")
	w.Close()

	got, err := readPassword(func(string) string { return "" }, r)
	if err != nil || got != "piped-password" {
		t.Errorf("expected piped password, got %q, %v", got, err)
	}
}

package gorm

import (
	"net/url"
	"path/filepath"
	"testing"
)

func TestDataSource(t *testing.T) {
	t.Run("postgres url gets the database name", func(t *testing.T) {
		driver, dsn, err := dataSource(Config{Driver: "postgres", URL: "postgres://user:secret@db:5432/", Name: "todos", ConnectTimeout: 5e9})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if driver != "postgres" {
			t.Errorf("driver: got %q, want postgres", driver)
		}
		u, err := url.Parse(dsn)
		if err != nil {
			t.Fatalf("dsn is not a url: %v", err)
		}
		if u.Path != "/todos" {
			t.Errorf("path: got %q, want /todos", u.Path)
		}
		if u.Query().Get("sslmode") != "disable" || u.Query().Get("connect_timeout") != "5" {
			t.Errorf("query: got %q", u.RawQuery)
		}
	})

	t.Run("sqlite file lives in the url directory", func(t *testing.T) {
		dir := t.TempDir()
		driver, dsn, err := dataSource(Config{Driver: "sqlite", URL: dir, Name: "todos"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if driver != "sqlite" || dsn != filepath.Join(dir, "todos.db") {
			t.Errorf("got (%q, %q)", driver, dsn)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		if _, _, err := dataSource(Config{Driver: "mysql"}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestOpenSqliteCreatesTables(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite", URL: t.TempDir(), Name: "todos"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer Close(db)

	for _, table := range []string{"todos", "categories"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("expected table %s", table)
		}
	}
}

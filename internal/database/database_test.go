package database

import (
	"context"
	"path/filepath"
	"testing"
)

func TestDriverFor(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost/db":   DriverPostgres,
		"postgresql://u:p@localhost/db": DriverPostgres,
		"assistbot.db":                  DriverSQLite,
		"/var/lib/assist/faq.db":        DriverSQLite,
	}

	for url, want := range cases {
		if got := DriverFor(url); got != want {
			t.Errorf("DriverFor(%q) = %q, want %q", url, got, want)
		}
	}
}

func TestRebind(t *testing.T) {
	q := "INSERT INTO faqs (question, answer) VALUES (?, ?)"

	pg := &DB{Driver: DriverPostgres}
	if got := pg.Rebind(q); got != "INSERT INTO faqs (question, answer) VALUES ($1, $2)" {
		t.Errorf("postgres rebind = %q", got)
	}

	lite := &DB{Driver: DriverSQLite}
	if got := lite.Rebind(q); got != q {
		t.Errorf("sqlite rebind = %q", got)
	}
}

func TestOpenSQLiteMigrates(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "faq.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	// migrating twice must be harmless
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM faqs").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty table, got %d rows", n)
	}
}

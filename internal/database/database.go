package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB is a connection pool that knows which SQL dialect it speaks.
type DB struct {
	*sql.DB
	Driver string
}

// DriverFor picks the driver from a DATABASE_URL value: postgres URLs go
// to lib/pq, everything else is treated as a SQLite file path.
func DriverFor(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

func Open(ctx context.Context, url string) (*DB, error) {
	driver := DriverFor(url)

	dsn := url
	if driver == DriverSQLite {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		dsn = url + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	if driver == DriverSQLite {
		// a single writer avoids SQLITE_BUSY between pooled connections
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	d := &DB{DB: db, Driver: driver}
	if err := d.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return d, nil
}

// Migrate creates the faqs table if it does not exist yet.
func (d *DB) Migrate(ctx context.Context) error {
	idCol := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if d.Driver == DriverPostgres {
		idCol = "id BIGSERIAL PRIMARY KEY"
	}

	_, err := d.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS faqs (
			`+idCol+`,
			question TEXT UNIQUE,
			answer TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate faqs: %w", err)
	}
	return nil
}

// Rebind rewrites ? placeholders into $n for Postgres.
func (d *DB) Rebind(query string) string {
	if d.Driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

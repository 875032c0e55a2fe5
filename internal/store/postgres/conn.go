// Package postgres implements store.Store against PostgreSQL: one
// table per model, columns per scalar field, a foreign-key column for
// each owner-side relation field. Grounded on avangerus-kalita's
// internal/pg package (conn.go/schema.go/apply.go), carrying over its
// dual-driver split (pgx for querying, lib/pq for identifier quoting
// during DDL generation) and its idempotent-DDL-apply idiom.
package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
)

// Open connects to dsn via the pgx stdlib driver, sized for the small
// connection counts a single compiled-schema instance needs.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgDuplicateObject is the SQLSTATE Postgres returns for a CREATE ...
// IF NOT EXISTS race or a repeated ADD CONSTRAINT; ApplyDDL treats it
// as success rather than failing an otherwise-idempotent migration.
const pgDuplicateObject = "42710"

// ApplyDDL executes a map of DDL keyed by a stable ordering key (see
// GenerateDDL), in key order, tolerating "already exists" races.
func ApplyDDL(db *sql.DB, ddl map[string]string) error {
	keys := make([]string, 0, len(ddl))
	for k := range ddl {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, k := range keys {
		stmts := strings.TrimSpace(ddl[k])
		if stmts == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmts); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgDuplicateObject {
				log.Printf("[contour] DDL skipped (already exists): %s", strings.TrimSpace(pgErr.Message))
				continue
			}
			if e := strings.ToLower(err.Error()); strings.Contains(e, "already exists") || strings.Contains(e, "duplicate") {
				log.Printf("[contour] DDL skipped (already exists): %v", err)
				continue
			}
			return fmt.Errorf("DDL apply failed (%s): %w", k, err)
		}
	}
	return nil
}

// Package test holds end-to-end checks that need a live Postgres.
package test

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/graeme-hill/wktstuff-go/lib"
	"github.com/lib/pq"
)

// SeedTextTable creates table with an id and a text wkt column and fills it
// with one row per document.
func SeedTextTable(ctx context.Context, db *sql.DB, table string, docs []lib.Document) error {
	name := pq.QuoteIdentifier(table)
	stmts := []string{
		fmt.Sprintf("DROP TABLE IF EXISTS %s", name),
		fmt.Sprintf("CREATE TABLE %s (id text PRIMARY KEY, wkt text)", name),
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "seeding %s", table)
		}
	}
	insert := fmt.Sprintf("INSERT INTO %s (id, wkt) VALUES ($1, $2)", name)
	for _, doc := range docs {
		if _, err := db.ExecContext(ctx, insert, doc.Name, doc.WKT); err != nil {
			return errors.Wrapf(err, "inserting %s", doc.Name)
		}
	}
	return nil
}

// SeedGeometryTable creates a PostGIS table holding one geometry per entry
// of rows, keyed by the map key.
func SeedGeometryTable(ctx context.Context, db *sql.DB, table string, rows map[string]string) error {
	name := pq.QuoteIdentifier(table)
	stmts := []string{
		fmt.Sprintf("DROP TABLE IF EXISTS %s", name),
		fmt.Sprintf("CREATE TABLE %s (id text PRIMARY KEY, geom geometry)", name),
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "seeding %s", table)
		}
	}

	keys := make([]string, 0, len(rows))
	for key := range rows {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	insert := fmt.Sprintf("INSERT INTO %s (id, geom) VALUES ($1, ST_GeomFromText($2))", name)
	for _, key := range keys {
		if _, err := db.ExecContext(ctx, insert, key, rows[key]); err != nil {
			return errors.Wrapf(err, "inserting %s", key)
		}
	}
	return nil
}

// HasPostGIS reports whether the connected database has the postgis
// extension installed.
func HasPostGIS(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx, "SELECT count(*) FROM pg_extension WHERE extname = 'postgis'").Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func DropTable(ctx context.Context, db *sql.DB, table string) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", pq.QuoteIdentifier(table)))
	return err
}

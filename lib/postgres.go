package lib

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

// TableSource says where WKT lives in a Postgres database.
type TableSource struct {
	Table     string
	Column    string
	KeyColumn string
	// Geometry means Column is a PostGIS geometry or geography column and is
	// read through ST_AsText. Otherwise it must hold WKT text.
	Geometry bool
}

func (s TableSource) validate() error {
	if s.Table == "" {
		return errors.New("source table is required")
	}
	if s.Column == "" {
		return errors.New("source column is required")
	}
	if s.KeyColumn == "" {
		return errors.New("source key column is required")
	}
	return nil
}

func buildSelectQuery(src TableSource) string {
	column := pq.QuoteIdentifier(src.Column)
	if src.Geometry {
		column = fmt.Sprintf("ST_AsText(%s)", column)
	}
	key := pq.QuoteIdentifier(src.KeyColumn)
	return fmt.Sprintf(
		"SELECT %s::text, %s FROM %s WHERE %s IS NOT NULL ORDER BY %s",
		key, column, pq.QuoteIdentifier(src.Table), pq.QuoteIdentifier(src.Column), key)
}

// LoadDocumentsFromTable parses the WKT in every row of the source table as
// its own document, named after the row key.
func LoadDocumentsFromTable(
	ctx context.Context,
	connectionString string,
	src TableSource,
	opts Options,
) ([]Document, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return loadDocuments(ctx, db, src, opts)
}

func loadDocuments(ctx context.Context, db *sql.DB, src TableSource, opts Options) ([]Document, error) {
	query := buildSelectQuery(src)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s", src.Table)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var key, wkt string
		if err := rows.Scan(&key, &wkt); err != nil {
			return nil, errors.Wrapf(err, "reading %s", src.Table)
		}
		doc, err := ParseDocument(key, wkt, opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", src.Table)
	}

	slog.DebugContext(ctx, "loaded wkt documents", "table", src.Table, "documents", len(docs))
	return docs, nil
}

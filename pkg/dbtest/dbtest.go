package dbtest

import (
	"context"
	"database/sql"
	"fmt"

	"fixmarkt/server/pkg/catalogdb"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// GetTestDB opens a uniquely named in-memory database so parallel tests
// never share state, and applies the schema.
func GetTestDB(ctx context.Context) (*sql.DB, error) {
	uniqueName := ulid.Make().String()
	connStr := fmt.Sprintf("file:testdb_%s?mode=memory&cache=shared", uniqueName)

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, err
	}

	if err := catalogdb.CreateLocalTables(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateTables executes the embedded schema script. All statements use
// IF NOT EXISTS, so calling it on an existing database is harmless.
func CreateTables(pool *sqlitex.Pool) error {
	script, err := sqlFiles.ReadFile("sql/treebanks.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute schema script: %w", err)
	}

	return nil
}

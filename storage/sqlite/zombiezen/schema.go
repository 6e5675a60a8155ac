package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// schemaVersion is stored in PRAGMA user_version once docs.sql is applied.
const schemaVersion = 1

// Migrate creates the doc tables of an empty database. A database written
// by a newer version is rejected.
func Migrate(pool *sqlitex.Pool) (err error) {
	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	version, err := userVersion(conn)
	if err != nil {
		return err
	}

	switch {
	case version == schemaVersion:
		return nil
	case version > schemaVersion:
		return fmt.Errorf("unsupported schema version %d (max %d)", version, schemaVersion)
	}

	script, err := sqlFiles.ReadFile("sql/docs.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file: %w", err)
	}

	defer sqlitex.Save(conn)(&err)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to create doc tables: %w", err)
	}

	return sqlitex.ExecuteTransient(conn, fmt.Sprintf("PRAGMA user_version = %d;", schemaVersion), nil)
}

func userVersion(conn *sqlite.Conn) (int, error) {
	var version int
	err := sqlitex.ExecuteTransient(conn, "PRAGMA user_version;", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			version = stmt.ColumnInt(0)
			return nil
		},
	})
	return version, err
}

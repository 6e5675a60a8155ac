package zombiezen

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite/sqlitex"
)

func TestMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.db")

	pool, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, Migrate(pool))

	conn, err := pool.Take(context.TODO())
	require.NoError(t, err)
	version, err := userVersion(conn)
	require.NoError(t, err)
	require.Equal(t, schemaVersion, version)

	require.NoError(t, sqlitex.ExecuteTransient(conn, "PRAGMA user_version = 9;", nil))
	pool.Put(conn)

	require.ErrorContains(t, Migrate(pool), "unsupported schema version 9")
	require.NoError(t, pool.Close())

	_, err = Open(path)
	require.Error(t, err)
}

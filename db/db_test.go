package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:app.db?"+sqlitePragmas, SQLiteDSN("app.db"))
	assert.Equal(t, "file:/tmp/x.db?"+sqlitePragmas, SQLiteDSN("file:/tmp/x.db"))
	assert.Equal(t, "file:x.db?mode=ro", SQLiteDSN("file:x.db?mode=ro"))
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open("mysql", "whatever")
	assert.Error(t, err)
}

func TestMigrate_SQLiteIsIdempotent(t *testing.T) {
	conn, err := Open(TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, conn, TypeSQLite))
	require.NoError(t, Migrate(ctx, conn, TypeSQLite))

	for _, table := range []string{"roulette", "option", "result", "draft_session_entry"} {
		var name string
		err := conn.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	conn, err := Open(TypeSQLite, filepath.Join(t.TempDir(), "fk.db"))
	require.NoError(t, err)
	defer conn.Close()

	var on int
	require.NoError(t, conn.QueryRow("PRAGMA foreign_keys").Scan(&on))
	assert.Equal(t, 1, on)
}

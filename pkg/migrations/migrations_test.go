package migrations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY,
	value TEXT NOT NULL
);
`

func TestOpenAndMigrateMemory(t *testing.T) {
	ctx := context.Background()
	db, err := OpenAndMigrateDB(ctx, testSchema, MemoryPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, "INSERT INTO entries (value) VALUES (?)", "a")
	require.NoError(t, err)

	// a second statement must see the same in-memory database
	var count int
	err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestOpenAndMigrateFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	db, err := OpenAndMigrateDB(ctx, testSchema, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// applying the schema twice is fine
	db, err = OpenAndMigrateDB(ctx, testSchema, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpenAndMigrateBadSchema(t *testing.T) {
	_, err := OpenAndMigrateDB(context.Background(), "CREATE TABLE (", MemoryPath)
	require.Error(t, err)
}

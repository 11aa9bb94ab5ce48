package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN_EscapesURIDelimiters(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "plain relative path",
			path: "data/road_obstacles.db",
			want: "file:data/road_obstacles.db?" + pragmas,
		},
		{
			name: "query and fragment characters",
			path: "/var/lib/a?b#c/road.db",
			want: "file:/var/lib/a%3Fb%23c/road.db?" + pragmas,
		},
		{
			name: "percent is not double decoded",
			path: "/tmp/100%3F/road.db",
			want: "file:/tmp/100%253F/road.db?" + pragmas,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildDSN(tt.path))
		})
	}
}

func TestOpen_PathWithURIDelimiters(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	path := filepath.Join(root, "a?b#c%20d", "road.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `CREATE TABLE kv_store (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO kv_store (key, value) VALUES ('obstacles', '[]')`)
	require.NoError(t, err)

	// pragma из строки подключения должны примениться
	var journalMode string
	require.NoError(t, db.QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)
	require.NoError(t, db.Close())

	_, err = os.Stat(path)
	require.NoError(t, err, "database must be created at the exact configured path")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a?b#c%20d", entries[0].Name())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	var value string
	require.NoError(t, reopened.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = 'obstacles'`).Scan(&value))
	assert.Equal(t, "[]", value)
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/its-api/internal/config"
	"github.com/aanand-mishra/its-api/internal/storage"
	"github.com/aanand-mishra/its-api/internal/storage/storagetest"
)

// setupTestDB opens a fresh in-memory database.
func setupTestDB(t *testing.T) *SQLite {
	t.Helper()

	db, err := New(&config.Config{StoragePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestSQLite_Conformance(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Storage {
		return setupTestDB(t)
	})
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	cfg := &config.Config{StoragePath: filepath.Join(t.TempDir(), "nested", "its.db")}
	ctx := context.Background()

	db, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Students().Insert(ctx, storagetest.Student("s-1", "a@a.com")))
	require.NoError(t, db.Students().UpdateActive(ctx, "s-1", true))
	_, err = db.Tasks().Insert(ctx, storagetest.Task("Survive restart"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := db.Students().SelectByID(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, bool(got.IsActive))

	tasks, err := db.Tasks().SelectAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Survive restart", *tasks[0].Title)
}

func TestSQLite_StoresActiveAsInteger(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Faculties().Insert(ctx, storagetest.Faculty("f-1", "f@f.com")))
	require.NoError(t, db.Faculties().UpdateActive(ctx, "f-1", true))

	var raw int
	require.NoError(t, db.Db.QueryRow("SELECT is_active FROM faculties WHERE id = ?", "f-1").Scan(&raw))
	assert.Equal(t, 1, raw)
}

func TestSQLite_ClosedDatabaseFails(t *testing.T) {
	db, err := New(&config.Config{StoragePath: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = db.Students().SelectAll(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}

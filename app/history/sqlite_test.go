package history

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/sqlbind/app/script"
)

func TestNewSQLiteStore(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
		require.NoError(t, err)
		assert.NotNil(t, store)

		var count int
		err = store.db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('runs', 'statements')")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		var mode string
		require.NoError(t, store.db.Get(&mode, "PRAGMA journal_mode"))
		assert.Equal(t, "wal", mode)
		require.NoError(t, store.Close())
	})

	t.Run("invalid path", func(t *testing.T) {
		store, err := NewSQLiteStore("/invalid/path/that/does/not/exist/history.db")
		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("reopen keeps data", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "history.db")
		store, err := NewSQLiteStore(dbPath)
		require.NoError(t, err)
		_, err = store.Record(script.Report{Script: "a", Database: "a.db", Started: time.Now()})
		require.NoError(t, err)
		require.NoError(t, store.Close())

		store, err = NewSQLiteStore(dbPath)
		require.NoError(t, err)
		defer store.Close()
		runs, err := store.Runs(10)
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})
}

func TestSQLiteStore_RecordAndRuns(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	started := time.Now().Add(-time.Minute)
	id1, err := store.Record(script.Report{
		Script:   "users.yml",
		Database: "users.db",
		Started:  started,
		Duration: 1500 * time.Millisecond,
		Results: []script.Result{
			{Name: "schema"},
			{Name: "add", Changes: 1, LastInsertID: 42},
			{Name: "list", Columns: []string{"id"}, Rows: [][]any{{int64(1)}, {int64(42)}}},
		},
	})
	require.NoError(t, err)

	id2, err := store.Record(script.Report{
		Script:   "command",
		Database: "other.db",
		Started:  time.Now(),
		Err:      errors.New("statement #1: sqlite: SQLITE_BUSY (5): database is locked"),
	})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := store.Runs(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	failed := runs[0]
	assert.Equal(t, id2, failed.ID)
	assert.Equal(t, "command", failed.Script)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Contains(t, failed.Error, "database is locked")
	assert.Empty(t, failed.Statements)

	ok := runs[1]
	assert.Equal(t, id1, ok.ID)
	assert.Equal(t, "users.yml", ok.Script)
	assert.Equal(t, "users.db", ok.Database)
	assert.Equal(t, StatusOK, ok.Status)
	assert.Empty(t, ok.Error)
	assert.WithinDuration(t, started, ok.StartedAt, time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, ok.Duration)
	assert.Equal(t, []Statement{
		{Name: "schema"},
		{Name: "add", Changes: 1, LastInsertID: 42},
		{Name: "list", Rows: 2},
	}, ok.Statements)

	limited, err := store.Runs(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, id2, limited[0].ID)
}

func TestSQLiteStore_EmptyDatabase(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Runs(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T, ctx context.Context) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(ctx, dbPath)
	require.NoError(t, err, "Open failed")
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return store
}

func TestSQLiteLoadMissingKey(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t, ctx)
	value, ok, err := store.Load(ctx, "timers")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestSQLiteSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t, ctx)
	require.NoError(t, store.Save(ctx, "timers", []byte(`[1]`)))
	require.NoError(t, store.Save(ctx, "timers", []byte(`[1,2]`)))

	value, ok, err := store.Load(ctx, "timers")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,2]`, string(value))

	var rows int
	require.NoError(t, store.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t, ctx)
	require.NoError(t, store.Save(ctx, "timerHistory", []byte(`[]`)))
	path := store.Path()
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err, "Open second run failed")
	defer reopened.Close()
	value, ok, err := reopened.Load(ctx, "timerHistory")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(value))
}

func TestSQLiteClosedStoreErrors(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t, ctx)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	err := store.Save(ctx, "timers", []byte(`[]`))
	assert.True(t, errors.Is(err, ErrClosed))
	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "save", opErr.Op)
	assert.Equal(t, "timers", opErr.Key)

	_, _, err = store.Load(ctx, "timers")
	assert.True(t, errors.Is(err, ErrClosed))
}

func TestOpErrorFormatting(t *testing.T) {
	err := &OpError{Op: "load", Key: "timers", Err: errors.New("boom")}
	assert.Equal(t, `load "timers": boom`, err.Error())
	assert.Equal(t, "open: boom", (&OpError{Op: "open", Err: errors.New("boom")}).Error())
	assert.Nil(t, wrapKeyErr("save", "timers", nil))
}

package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) *SQLite {
	t.Helper()

	backend, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := setupSQLite(t)

	require.NoError(t, backend.Set(ctx, "vehicle:100", []byte(`{"make":"Toyota"}`)))

	value, err := backend.Get(ctx, "vehicle:100")
	require.NoError(t, err)
	assert.JSONEq(t, `{"make":"Toyota"}`, string(value))
}

func TestSQLiteGetMissing(t *testing.T) {
	backend := setupSQLite(t)

	_, err := backend.Get(context.Background(), "vehicle:nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteSetOverwrites(t *testing.T) {
	ctx := context.Background()
	backend := setupSQLite(t)

	require.NoError(t, backend.Set(ctx, "customer:1", []byte(`{"v":1}`)))
	require.NoError(t, backend.Set(ctx, "customer:1", []byte(`{"v":2}`)))

	value, err := backend.Get(ctx, "customer:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(value))

	keys, err := backend.List(ctx, "customer:")
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestSQLiteListPrefix(t *testing.T) {
	ctx := context.Background()
	backend := setupSQLite(t)

	require.NoError(t, backend.Set(ctx, "sale:1", []byte("{}")))
	require.NoError(t, backend.Set(ctx, "sale:2", []byte("{}")))
	require.NoError(t, backend.Set(ctx, "service:1", []byte("{}")))

	keys, err := backend.List(ctx, "sale:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sale:1", "sale:2"}, keys)
}

func TestSQLiteDeleteMissingKey(t *testing.T) {
	backend := setupSQLite(t)

	assert.NoError(t, backend.Delete(context.Background(), "appointment:nope"))
}

func TestSQLitePing(t *testing.T) {
	backend := setupSQLite(t)

	assert.NoError(t, backend.Ping(context.Background()))
}

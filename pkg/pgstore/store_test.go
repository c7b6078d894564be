package pgstore_test

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statekit"
	"github.com/dmitrymomot/statekit/pkg/pgstore"
)

var _ statekit.Host[string, *pgstore.Entity] = (*pgstore.Store)(nil)

func TestNewStore(t *testing.T) {
	t.Parallel()

	t.Run("accepts plain identifiers", func(t *testing.T) {
		t.Parallel()

		store, err := pgstore.NewStore(nil, "orders", "id", "status")
		require.NoError(t, err)
		require.NotNil(t, store)
	})

	t.Run("rejects non-identifier names", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "1orders", "orders; drop table users", `orders"`} {
			_, err := pgstore.NewStore(nil, name, "id", "status")
			require.ErrorIs(t, err, pgstore.ErrInvalidIdentifier, "table name %q", name)
		}

		_, err := pgstore.NewStore(nil, "orders", "id--", "status")
		require.ErrorIs(t, err, pgstore.ErrInvalidIdentifier)
	})
}

func TestEntityChangeTracking(t *testing.T) {
	t.Parallel()

	store, err := pgstore.NewStore(nil, "orders", "id", "status")
	require.NoError(t, err)

	t.Run("fresh entity has no staged change", func(t *testing.T) {
		t.Parallel()

		e := &pgstore.Entity{}
		assert.False(t, e.Changed())
		assert.False(t, store.Changed(e))

		_, ok := store.Current(e)
		assert.False(t, ok, "NULL column resolves to no current value")
		_, ok = store.Previous(e)
		assert.False(t, ok)
	})

	t.Run("staging records the replaced value", func(t *testing.T) {
		t.Parallel()

		e := &pgstore.Entity{}
		e.Set("na")
		e2 := &pgstore.Entity{}
		e2.Set("na")

		cur, ok := store.Current(e)
		require.True(t, ok)
		assert.Equal(t, "na", cur)
		assert.True(t, e.Changed())

		// The column was NULL before the first staging.
		_, ok = store.Previous(e2)
		assert.False(t, ok)
	})

	t.Run("repeated staging keeps the persisted value as previous", func(t *testing.T) {
		t.Parallel()

		e := &pgstore.Entity{}
		e.Set("na")
		e.Set("in_progress")

		_, ok := store.Previous(e)
		assert.False(t, ok, "previous stays at the persisted NULL, not the intermediate staging")

		cur, ok := store.Current(e)
		require.True(t, ok)
		assert.Equal(t, "in_progress", cur)
	})

	t.Run("entity at rest is its own previous value", func(t *testing.T) {
		t.Parallel()

		e := &pgstore.Entity{}
		cur, curOK := store.Current(e)
		prev, prevOK := store.Previous(e)
		assert.Equal(t, cur, prev)
		assert.Equal(t, curOK, prevOK)
	})
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv("PGSTORE_CONN_URL", "postgres://localhost:5432/statekit_test")

	var cfg pgstore.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "postgres://localhost:5432/statekit_test", cfg.ConnectionString)
	assert.Equal(t, int32(10), cfg.MaxOpenConns)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.RetryInterval)
	assert.Equal(t, "entities", cfg.Table)
	assert.Equal(t, "id", cfg.IDColumn)
	assert.Equal(t, "status", cfg.StateColumn)
}

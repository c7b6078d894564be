package redisstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statekit"
	"github.com/dmitrymomot/statekit/pkg/redisstore"
)

var _ statekit.Host[string, *redisstore.Entity] = (*redisstore.Store)(nil)

func newTestStore(t *testing.T) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := redisstore.NewStore(client, "statekit:entity:", "status")
	require.NoError(t, err)
	return store, mr
}

func TestNewStore(t *testing.T) {
	t.Parallel()

	_, err := redisstore.NewStore(nil, "prefix:", "")
	require.ErrorIs(t, err, redisstore.ErrEmptyStateField)
}

func TestStoreLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing entity", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, err := store.Load(ctx, "nope")
		require.ErrorIs(t, err, redisstore.ErrEntityNotFound)
	})

	t.Run("entity with state", func(t *testing.T) {
		t.Parallel()

		store, mr := newTestStore(t)
		mr.HSet("statekit:entity:42", "status", "na")

		e, err := store.Load(ctx, "42")
		require.NoError(t, err)

		state, ok := e.State()
		require.True(t, ok)
		assert.Equal(t, "na", state)
		assert.False(t, e.Changed())
	})

	t.Run("entity without the state field", func(t *testing.T) {
		t.Parallel()

		store, mr := newTestStore(t)
		mr.HSet("statekit:entity:42", "owner", "alice")

		e, err := store.Load(ctx, "42")
		require.NoError(t, err)

		_, ok := e.State()
		assert.False(t, ok)
	})
}

func TestStorePersistence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("save persists a staged change", func(t *testing.T) {
		t.Parallel()

		store, mr := newTestStore(t)
		mr.HSet("statekit:entity:42", "status", "na")

		e, err := store.Load(ctx, "42")
		require.NoError(t, err)

		e.Set("in_progress")
		require.NoError(t, store.Save(ctx, e))
		assert.False(t, e.Changed())
		assert.Equal(t, "in_progress", mr.HGet("statekit:entity:42", "status"))

		// Save without a staged change is a no-op.
		require.NoError(t, store.Save(ctx, e))
	})

	t.Run("assign writes and rolls tracking forward", func(t *testing.T) {
		t.Parallel()

		store, mr := newTestStore(t)
		mr.HSet("statekit:entity:42", "status", "na")

		e, err := store.Load(ctx, "42")
		require.NoError(t, err)

		require.NoError(t, store.Assign(ctx, e, "in_progress"))
		assert.Equal(t, "in_progress", mr.HGet("statekit:entity:42", "status"))

		prev, ok := store.Previous(e)
		require.True(t, ok)
		assert.Equal(t, "in_progress", prev, "entity at rest is its own previous value")
	})
}

func TestStoreWithPolicy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	table, err := statekit.New("status",
		[]string{"na", "in_progress", "dispatched"},
		map[string]statekit.Rule[string, *redisstore.Entity]{
			"in_progress": {From: []string{"na"}},
			"dispatched":  {From: []string{"in_progress"}},
		},
	)
	require.NoError(t, err)

	t.Run("validate blocks an illegal staged change", func(t *testing.T) {
		t.Parallel()

		store, mr := newTestStore(t)
		policy := statekit.Bind(table, store)
		mr.HSet("statekit:entity:42", "status", "na")

		e, err := store.Load(ctx, "42")
		require.NoError(t, err)

		e.Set("dispatched")
		err = policy.Validate(e)
		require.Error(t, err)

		var verr statekit.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "invalid transition from na to dispatched", verr.Get("status"))

		// Nothing was written.
		assert.Equal(t, "na", mr.HGet("statekit:entity:42", "status"))
	})

	t.Run("fire walks the chain", func(t *testing.T) {
		t.Parallel()

		store, mr := newTestStore(t)
		policy := statekit.Bind(table, store)
		mr.HSet("statekit:entity:42", "status", "na")

		e, err := store.Load(ctx, "42")
		require.NoError(t, err)

		fired, err := policy.Fire(ctx, e, []string{"in_progress", "dispatched"}, true)
		require.NoError(t, err)
		assert.True(t, fired)
		assert.Equal(t, "dispatched", mr.HGet("statekit:entity:42", "status"))
	})
}

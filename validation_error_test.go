package statekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statekit"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()

		verr := statekit.NewValidationError()
		assert.True(t, verr.IsEmpty())
		assert.False(t, verr.Has("status"))
		assert.Empty(t, verr.Get("status"))
		assert.Equal(t, "validation failed", verr.Error())
	})

	t.Run("collects messages per field", func(t *testing.T) {
		t.Parallel()

		verr := statekit.NewValidationError()
		verr.Add("status", "invalid transition from na to dispatched")
		verr.Add("status", "invalid transition from na to archived")

		require.True(t, verr.Has("status"))
		assert.False(t, verr.IsEmpty())
		assert.Equal(t, "invalid transition from na to dispatched", verr.Get("status"))
		assert.Contains(t, verr.Error(), "status: invalid transition from na to dispatched")
	})
}

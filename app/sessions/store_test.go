package sessions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	store, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	store := setupTestStore(t)

	t.Run("create and resolve", func(t *testing.T) {
		token, err := store.Create(42)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		userID, err := store.UserID(token)
		assert.NoError(t, err)
		assert.Equal(t, 42, userID)
	})

	t.Run("tokens are unique per session", func(t *testing.T) {
		first, err := store.Create(1)
		require.NoError(t, err)
		second, err := store.Create(1)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := store.UserID("no-such-token")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("destroy", func(t *testing.T) {
		token, err := store.Create(7)
		require.NoError(t, err)

		require.NoError(t, store.Destroy(token))

		_, err = store.UserID(token)
		assert.ErrorIs(t, err, ErrNoSession)

		// Destroying again is a no-op.
		assert.NoError(t, store.Destroy(token))
	})

	t.Run("persists across reopen", func(t *testing.T) {
		dir := t.TempDir()
		store, err := Open(dir)
		require.NoError(t, err)

		token, err := store.Create(9)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		reopened, err := Open(dir)
		require.NoError(t, err)
		defer reopened.Close()

		userID, err := reopened.UserID(token)
		assert.NoError(t, err)
		assert.Equal(t, 9, userID)
	})
}

package repositories

import (
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLUserRepository(db)

	t.Run("create and look up", func(t *testing.T) {
		user := &models.User{Name: "alice", Password: "hash"}
		require.NoError(t, repo.Create(user))
		assert.NotZero(t, user.ID)
		assert.False(t, user.Created.IsZero())

		byID, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", byID.Name)

		byName, err := repo.GetByName("alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.GetByName("nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate name hits the unique constraint", func(t *testing.T) {
		err := repo.Create(&models.User{Name: "alice", Password: "otherhash"})
		assert.Error(t, err)
	})
}

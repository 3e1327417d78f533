package repositories

import (
	"database/sql"
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *sql.DB, name string) *models.User {
	user := &models.User{
		Name:     name,
		Password: "not-a-real-hash",
	}
	require.NoError(t, NewSQLUserRepository(db).Create(user))
	return user
}

func createTestPost(t *testing.T, db *sql.DB, title, datePosted, displayDate string, authorID int) *models.Post {
	post := &models.Post{
		Title:       title,
		DatePosted:  datePosted,
		DisplayDate: displayDate,
		AuthorID:    authorID,
	}
	require.NoError(t, NewSQLPostRepository(db).Create(post))
	return post
}

package repositories

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Open opens the SQLite database at path and verifies the connection.
// Foreign key enforcement is switched on so the comment cascade works at
// the schema level too. SQLite allows a single writer, so the pool is
// capped at one connection; this also makes ":memory:" behave as one
// database across the process.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", path)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "ping database %s", path)
	}
	return db, nil
}

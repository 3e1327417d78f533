// Package sessions keeps login sessions in a local Badger database.
// Tokens are opaque UUIDs stored with a TTL, so expiry needs no sweeper:
// expired entries simply stop resolving.
package sessions

import (
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// Duration is how long a login session stays valid.
	Duration = 24 * time.Hour

	keyPrefix = "session:"
)

var (
	ErrNoSession = errors.New("session not found")
)

// Store is a session store backed by BadgerDB.
type Store struct {
	db *badger.DB
}

// Open opens the session store at dir. An empty dir opens an in-memory
// store, used by tests.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open session store")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create starts a new session for userID and returns its token.
func (s *Store) Create(userID int) (string, error) {
	token := uuid.NewString()
	err := s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(
			[]byte(keyPrefix+token),
			[]byte(strconv.Itoa(userID)),
		).WithTTL(Duration)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return "", errors.Wrap(err, "create session")
	}
	return token, nil
}

// UserID resolves a session token to the user it belongs to.
// Unknown and expired tokens both return ErrNoSession.
func (s *Store) UserID(token string) (int, error) {
	var userID int
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + token))
		if err == badger.ErrKeyNotFound {
			return ErrNoSession
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			userID, err = strconv.Atoi(string(val))
			return err
		})
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// Destroy ends a session. Destroying an unknown token is not an error.
func (s *Store) Destroy(token string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + token))
	})
	if err != nil {
		return errors.Wrap(err, "destroy session")
	}
	return nil
}

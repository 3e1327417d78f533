package repositories

import (
	"database/sql"

	"inkwell/app/models"

	"github.com/pkg/errors"
)

// SQLUserRepository implements UserRepository on the user table.
type SQLUserRepository struct {
	db *sql.DB
}

// NewSQLUserRepository creates a new SQLUserRepository
func NewSQLUserRepository(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

// Create inserts a new user and fills in its assigned ID. The name column
// carries a UNIQUE constraint; callers check availability first for a
// friendly message, the constraint is the backstop.
func (r *SQLUserRepository) Create(user *models.User) error {
	user.BeforeCreate()

	res, err := r.db.Exec(
		`INSERT INTO user (name, password, created) VALUES (?, ?, ?)`,
		user.Name, user.Password, user.Created,
	)
	if err != nil {
		return errors.Wrapf(err, "insert user %q", user.Name)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "read user id")
	}
	user.ID = int(id)
	return nil
}

// GetByID retrieves a user by ID.
func (r *SQLUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(
		`SELECT id, name, password, created FROM user WHERE id = ?`, id,
	).Scan(&user.ID, &user.Name, &user.Password, &user.Created)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select user %d", id)
	}
	return &user, nil
}

// GetByName retrieves a user by display name.
func (r *SQLUserRepository) GetByName(name string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(
		`SELECT id, name, password, created FROM user WHERE name = ?`, name,
	).Scan(&user.ID, &user.Name, &user.Password, &user.Created)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select user %q", name)
	}
	return &user, nil
}

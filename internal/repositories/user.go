package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/sqlbuilder"
)

var userColumns = sqlbuilder.ColumnMap{
	{Field: "first_name", Column: "first_name"},
	{Field: "last_name", Column: "last_name"},
	{Field: "email", Column: "email"},
	{Field: "username", Column: "username"},
	{Field: "password", Column: "password_hash"},
}

// UserRepository reads and writes the users table.
type UserRepository struct {
	store
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{store{db: db, txGetter: txGetter}}
}

// Create inserts u and returns the assigned id. Duplicate email/username
// surfaces as the driver's unique-violation error.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int64, error) {
	const query = `
		INSERT INTO users (first_name, last_name, email, username, password_hash, admin, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	args := []any{u.FirstName, u.LastName, u.Email, u.Username, u.PasswordHash, u.Admin, u.Active}
	logArgs := []any{u.FirstName, u.LastName, u.Email, u.Username, redacted, u.Admin, u.Active}

	return r.insert(ctx, query, args, logArgs)
}

// GetByID returns the user or ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, first_name, last_name, email, username, password_hash, admin, active
		FROM users
		WHERE id = ?
	`
	var user models.User
	if err := r.get(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies the present fields of upd. The password field must already
// hold the hash.
func (r *UserRepository) Update(ctx context.Context, id int64, upd models.UserUpdate) (int64, error) {
	return r.update(ctx, "users", userColumns, upd, id, "password_hash")
}

// Delete removes the user and returns its id, or ErrNotFound.
func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.delete(ctx, "users", id)
}

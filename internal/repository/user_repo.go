package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"techsphere/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (full_name, username, email, password_hash) VALUES (?, ?, ?, ?)`

	selectUserByUsernameSQL = `SELECT id, full_name, username, email, password_hash FROM users WHERE username = ?`

	updateUserSQL = `UPDATE users SET full_name = ?, email = ?, password_hash = ? WHERE username = ?`
)

// Create inserts a new user and returns its ID. The UNIQUE constraints on
// username and email surface as a driver error here.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.FullName, u.Username, u.Email, u.PasswordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return lastID, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// Update overwrites the mutable fields of the user row keyed by username.
func (r *UserRepository) Update(ctx context.Context, username, fullName, email, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateUserSQL, fullName, email, passwordHash, username)
	if err != nil {
		return 0, fmt.Errorf("update user %q: %w", username, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for user %q: %w", username, err)
	}
	return affected, nil
}

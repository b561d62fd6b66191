// Package postgres provides the production implementation of
// [users.Repository] backed by PostgreSQL, using jmoiron/sqlx over the pgx
// stdlib driver.
//
// The repository stores records exactly as the service hands them over: the
// phone column holds the sealed colon-hex encoding (or the empty string),
// and the password_hash column holds the bcrypt string. Nothing in this
// package touches key material.
//
// Expected schema:
//
//	CREATE TABLE users (
//	    id            UUID PRIMARY KEY,
//	    name          TEXT NOT NULL,
//	    email         TEXT NOT NULL UNIQUE,
//	    password_hash TEXT NOT NULL,
//	    phone         TEXT NOT NULL DEFAULT '',
//	    created_at    TIMESTAMPTZ NOT NULL,
//	    updated_at    TIMESTAMPTZ NOT NULL
//	);
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"

	"github.com/minanasr00/sraha-app/users"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint hits;
// used to map duplicate emails onto [users.ErrEmailTaken].
const uniqueViolation = "23505"

// Repository is a PostgreSQL-backed [users.Repository].
type Repository struct {
	db *sqlx.DB
}

// Open connects to the database at dsn (DATABASE_URL) and verifies the
// connection before returning a [Repository].
func Open(ctx context.Context, dsn string) (*Repository, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return &Repository{db: db}, nil
}

// New wraps an existing connection pool. The caller keeps ownership of db.
func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Create persists a new user. A duplicate email fails with
// [users.ErrEmailTaken].
func (r *Repository) Create(ctx context.Context, user *users.User) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, phone, created_at, updated_at)
		VALUES (:id, :name, :email, :password_hash, :phone, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if isUniqueViolation(err) {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("postgres: create user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by ID. Returns [users.ErrUserNotFound] when absent.
func (r *Repository) FindByID(ctx context.Context, id string) (*users.User, error) {
	const query = `
		SELECT id, name, email, password_hash, phone, created_at, updated_at
		FROM users WHERE id = $1`

	var u users.User
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("postgres: find user by id: %w", err)
	}
	return &u, nil
}

// FindByEmail retrieves a user by email. Returns [users.ErrUserNotFound]
// when absent.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	const query = `
		SELECT id, name, email, password_hash, phone, created_at, updated_at
		FROM users WHERE email = $1`

	var u users.User
	if err := r.db.GetContext(ctx, &u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("postgres: find user by email: %w", err)
	}
	return &u, nil
}

// Update persists changes to an existing user.
func (r *Repository) Update(ctx context.Context, user *users.User) error {
	const query = `
		UPDATE users
		SET name = :name, email = :email, password_hash = :password_hash,
		    phone = :phone, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("postgres: update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("postgres: update user: %w", err)
	}
	if n == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

// Delete removes the user with the given ID. Returns [users.ErrUserNotFound]
// when absent.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("postgres: delete user: %w", err)
	}
	if n == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

// List returns all users ordered by creation time, oldest first.
func (r *Repository) List(ctx context.Context) ([]*users.User, error) {
	const query = `
		SELECT id, name, email, password_hash, phone, created_at, updated_at
		FROM users ORDER BY created_at, id`

	var out []*users.User
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("postgres: list users: %w", err)
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

package users

import "context"

// Repository defines the persistence operations for [User] records.
//
// Implementations store records exactly as given — in particular, the Phone
// field arrives already sealed (or empty) and must be returned byte-for-byte.
// All cryptographic work happens above this interface, in [Service].
//
// The in-memory reference implementation is in users/inmemory; the
// production Postgres implementation is in users/postgres.
type Repository interface {
	// Create persists a new user. The user's ID and email must be unique;
	// a duplicate email fails with [ErrEmailTaken].
	Create(ctx context.Context, user *User) error

	// FindByID retrieves a user by ID.
	// Returns [ErrUserNotFound] when no matching record exists.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail retrieves a user by email.
	// Returns [ErrUserNotFound] when no matching record exists.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update persists changes to an existing user.
	// Returns [ErrUserNotFound] if no such user exists.
	Update(ctx context.Context, user *User) error

	// Delete removes the user with the given ID.
	// Returns [ErrUserNotFound] if no such user exists.
	Delete(ctx context.Context, id string) error

	// List returns all users.
	List(ctx context.Context) ([]*User, error)
}

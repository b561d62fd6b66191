// Package inmemory provides a thread-safe in-memory implementation of
// [users.Repository].
//
// It is intended for tests and prototyping. Do not use it in production;
// see users/postgres for the real thing.
package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/minanasr00/sraha-app/users"
)

// Repository is a thread-safe in-memory implementation of [users.Repository].
//
// Records are stored exactly as given — the phone field stays sealed — which
// makes the repository usable as a raw-storage probe in tests asserting that
// ciphertext never leaks past the service boundary.
type Repository struct {
	mu    sync.RWMutex
	byID  map[string]*users.User
	email map[string]string // email -> user ID
}

// New creates an empty [Repository].
func New() *Repository {
	return &Repository{
		byID:  make(map[string]*users.User),
		email: make(map[string]string),
	}
}

// Create stores a new user. Returns [users.ErrEmailTaken] when the email is
// already registered.
func (r *Repository) Create(_ context.Context, user *users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.email[user.Email]; taken {
		return users.ErrEmailTaken
	}
	r.byID[user.ID] = cloneUser(user)
	r.email[user.Email] = user.ID
	return nil
}

// FindByID retrieves a user by ID. Returns [users.ErrUserNotFound] when absent.
func (r *Repository) FindByID(_ context.Context, id string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// FindByEmail retrieves a user by email. Returns [users.ErrUserNotFound]
// when absent.
func (r *Repository) FindByEmail(_ context.Context, email string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.email[email]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return cloneUser(r.byID[id]), nil
}

// Update persists changes to an existing user.
func (r *Repository) Update(_ context.Context, user *users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byID[user.ID]
	if !ok {
		return users.ErrUserNotFound
	}
	if prev.Email != user.Email {
		if _, taken := r.email[user.Email]; taken {
			return users.ErrEmailTaken
		}
		delete(r.email, prev.Email)
		r.email[user.Email] = user.ID
	}
	r.byID[user.ID] = cloneUser(user)
	return nil
}

// Delete removes the user with the given ID. Returns [users.ErrUserNotFound]
// when absent.
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return users.ErrUserNotFound
	}
	delete(r.email, u.Email)
	delete(r.byID, id)
	return nil
}

// List returns all users ordered by creation time, oldest first.
func (r *Repository) List(_ context.Context) ([]*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Raw returns the stored record for id without any cloning or error mapping.
// It exists so tests can inspect the at-rest representation directly; the
// second return value reports whether the record exists.
func (r *Repository) Raw(id string) (*users.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return cloneUser(u), true
}

// cloneUser returns a copy of u so callers cannot mutate stored records.
func cloneUser(u *users.User) *users.User {
	cp := *u
	return &cp
}

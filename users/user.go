// Package users implements the registration surface of the backend: signup,
// login, and profile CRUD for user records whose sensitive phone field is
// encrypted at rest and whose password is stored only as a bcrypt hash.
//
// The package is the integration boundary for the cryptographic field
// protection layer. The [Service] owns the mapping between the two
// representations of a user:
//
//   - the caller view, with a plaintext Phone, and
//   - the stored view, with Phone sealed by [encryption.FieldTransform].
//
// [Repository] implementations persist records exactly as given and make no
// cryptographic decisions; every Service code path that materialises a user
// (fetch, list, post-update read) runs the stored value back through the
// transform before returning it. A repository is never a safe source of
// plaintext.
package users

import "time"

// User is a registered account.
//
// Phone is optional and sensitive: at the Service boundary it is plaintext,
// while the repository only ever sees the sealed colon-hex encoding (or an
// empty string when the field is absent). PasswordHash is a bcrypt string
// and is never reversed.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Phone        string    `db:"phone" json:"phone,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// clone returns a copy of u so that repository-held records and caller-held
// views cannot alias each other.
func (u *User) clone() *User {
	cp := *u
	return &cp
}

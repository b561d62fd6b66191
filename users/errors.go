package users

import "errors"

// Sentinel errors returned by the users package. Compare with [errors.Is].
var (
	// ErrUserNotFound is returned when no user matches the given ID or email.
	ErrUserNotFound = errors.New("users: user not found")

	// ErrEmailTaken is returned by Signup when the email is already registered.
	ErrEmailTaken = errors.New("users: email already registered")

	// ErrInvalidCredentials is returned by Login for both an unknown email
	// and a wrong password, so the response cannot be used as an oracle to
	// probe which accounts exist.
	ErrInvalidCredentials = errors.New("users: invalid credentials")

	// ErrNoTokenSecret is returned when a TokenIssuer is constructed without
	// a signing secret.
	ErrNoTokenSecret = errors.New("users: token signing secret is required")

	// ErrInvalidToken is returned when a token fails signature or claim
	// validation.
	ErrInvalidToken = errors.New("users: invalid token")
)

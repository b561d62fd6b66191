package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/minanasr00/sraha-app/encryption"
	"github.com/minanasr00/sraha-app/hashing"
)

// SignupInput holds the parameters for [Service.Signup].
// Field validation (email shape, password policy) belongs to the request
// layer and is assumed to have happened already.
type SignupInput struct {
	Name     string
	Email    string
	Password string

	// Phone is optional. When empty it is stored as empty and never enters
	// the cipher.
	Phone string
}

// UpdateInput holds the parameters for [Service.UpdateProfile].
// Nil pointers leave the corresponding field unchanged; a pointer to the
// empty string clears it.
type UpdateInput struct {
	Name  *string
	Phone *string
}

// Service implements the registration operations over a [Repository],
// applying credential hashing and the field transform so that callers only
// ever see plaintext and storage only ever sees protected values.
//
// Service is safe for concurrent use; it holds no mutable state of its own.
type Service struct {
	repo      Repository
	hashes    *hashing.Pool
	transform *encryption.FieldTransform
	tokens    *TokenIssuer
	now       func() time.Time
}

// NewService constructs a [Service].
//
// tokens may be nil, in which case [Service.Login] authenticates but returns
// an empty token string.
func NewService(repo Repository, hashes *hashing.Pool, transform *encryption.FieldTransform, tokens *TokenIssuer) *Service {
	return &Service{
		repo:      repo,
		hashes:    hashes,
		transform: transform,
		tokens:    tokens,
		now:       time.Now,
	}
}

// Signup registers a new account: the password is hashed through the pool,
// the phone (if any) is sealed, and the record is persisted. The returned
// user is the caller view, with the plaintext phone.
//
// Returns [ErrEmailTaken] if the email is already registered.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*User, error) {
	hash, err := s.hashes.Hash(ctx, in.Password)
	if err != nil {
		return nil, fmt.Errorf("users: hash password: %w", err)
	}

	sealed, err := s.transform.EncryptField(in.Phone)
	if err != nil {
		return nil, fmt.Errorf("users: seal phone: %w", err)
	}

	now := s.now()
	record := &User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        sealed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	return s.open(record)
}

// Login authenticates an email/password pair and, when a [TokenIssuer] is
// configured, issues a signed token for the session.
//
// Both an unknown email and a wrong password fail with
// [ErrInvalidCredentials]; the caller must not be able to tell which check
// failed. The deliberately asymmetric cost (a repository miss is cheap, a
// bcrypt comparison is not) is acceptable here — the error shape, not the
// timing of an uncached lookup, is the oracle this guards against.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	record, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	ok, err := s.hashes.Verify(ctx, password, record.PasswordHash)
	if err != nil {
		// A malformed stored hash is corrupted data, not a bad credential;
		// let it surface distinctly.
		return nil, "", fmt.Errorf("users: verify password: %w", err)
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.open(record)
	if err != nil {
		return nil, "", err
	}

	var token string
	if s.tokens != nil {
		token, err = s.tokens.Issue(user)
		if err != nil {
			return nil, "", fmt.Errorf("users: issue token: %w", err)
		}
	}
	return user, token, nil
}

// Get returns the user with the given ID, with the phone opened.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.open(record)
}

// List returns all users, with every phone opened. A single record that
// fails to open aborts the whole listing: silently returning ciphertext (or
// skipping the record) would mask tampering.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*User, 0, len(records))
	for _, record := range records {
		user, err := s.open(record)
		if err != nil {
			return nil, err
		}
		out = append(out, user)
	}
	return out, nil
}

// UpdateProfile applies the given changes and returns the resulting user as
// callers see it — the post-update read goes through the transform like
// every other materialisation path.
func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateInput) (*User, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		record.Name = *in.Name
	}
	if in.Phone != nil {
		sealed, err := s.transform.EncryptField(*in.Phone)
		if err != nil {
			return nil, fmt.Errorf("users: seal phone: %w", err)
		}
		record.Phone = sealed
	}
	record.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.open(record)
}

// Delete removes the user with the given ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// open converts a stored record into the caller view by running the sealed
// phone back through the transform. Every public method that returns a
// user goes through here; that single choke point is what keeps ciphertext
// from ever crossing the service boundary.
func (s *Service) open(record *User) (*User, error) {
	user := record.clone()
	phone, err := s.transform.DecryptField(record.Phone)
	if err != nil {
		return nil, fmt.Errorf("users: open phone: %w", err)
	}
	user.Phone = phone
	return user, nil
}

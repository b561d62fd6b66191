// Package config loads the process-wide configuration for the cryptographic
// field protection layer.
//
// Configuration is read once at startup from the environment (with optional
// .env support via github.com/joho/godotenv) and held immutably for the
// process lifetime. Loading is fail-closed: a missing or malformed
// ENCRYPTION_KEY or HASH_COST_FACTOR aborts initialization with
// [ErrConfiguration] instead of falling back to an insecure default.
//
// Key material is never logged and never serialized; [Config] deliberately
// has no String method and must not be passed to logging calls.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/minanasr00/sraha-app/encryption"
)

// Environment variable names.
const (
	// EnvEncryptionKey holds the 64-hex-character (32-byte) AES-256 key for
	// field encryption. Required.
	EnvEncryptionKey = "ENCRYPTION_KEY"

	// EnvHashCostFactor holds the bcrypt work factor for credential hashing.
	// Required; must be a positive integer.
	EnvHashCostFactor = "HASH_COST_FACTOR"

	// EnvJWTSecret holds the HS256 signing secret for login tokens.
	// Optional; required only when token issuance is used.
	EnvJWTSecret = "JWT_SECRET"

	// EnvDatabaseURL holds the Postgres connection string for the production
	// user repository. Optional; the in-memory repository needs none.
	EnvDatabaseURL = "DATABASE_URL"
)

// ErrConfiguration is returned when a required value is missing or
// malformed. It is fatal at startup: callers must abort initialization
// rather than construct the dependent component with a default.
var ErrConfiguration = errors.New("config: invalid configuration")

// Config holds the immutable process-wide configuration.
type Config struct {
	// EncryptionKey is the decoded 32-byte AES-256 key. Never log it.
	EncryptionKey []byte

	// HashCost is the validated bcrypt work factor.
	HashCost int

	// JWTSecret signs login tokens. Empty when token issuance is unused.
	JWTSecret string

	// DatabaseURL is the Postgres DSN. Empty when no database is configured.
	DatabaseURL string
}

// Load reads configuration from the process environment. A .env file in the
// working directory is merged in first when present; its absence is not an
// error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(os.Getenv)
}

// LoadFrom reads configuration through getenv, which allows tests to inject
// values without touching the process environment.
func LoadFrom(getenv func(string) string) (*Config, error) {
	hexKey := getenv(EnvEncryptionKey)
	if hexKey == "" {
		return nil, fmt.Errorf("%w: %s is required", ErrConfiguration, EnvEncryptionKey)
	}
	key, err := encryption.ParseKey(hexKey)
	if err != nil {
		// Deliberately omit the offending value: key material (even a
		// malformed attempt at it) must not appear in error output.
		return nil, fmt.Errorf("%w: %s: %w", ErrConfiguration, EnvEncryptionKey, err)
	}

	rawCost := getenv(EnvHashCostFactor)
	if rawCost == "" {
		return nil, fmt.Errorf("%w: %s is required", ErrConfiguration, EnvHashCostFactor)
	}
	cost, err := strconv.Atoi(rawCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", ErrConfiguration, EnvHashCostFactor, rawCost)
	}
	if cost <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive, got %d", ErrConfiguration, EnvHashCostFactor, cost)
	}

	return &Config{
		EncryptionKey: key,
		HashCost:      cost,
		JWTSecret:     getenv(EnvJWTSecret),
		DatabaseURL:   getenv(EnvDatabaseURL),
	}, nil
}

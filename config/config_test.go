package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/minanasr00/sraha-app/config"
	"github.com/minanasr00/sraha-app/encryption"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func validVars() map[string]string {
	return map[string]string{
		config.EnvEncryptionKey:  strings.Repeat("ab", 32),
		config.EnvHashCostFactor: "12",
	}
}

func TestLoadFrom_Valid(t *testing.T) {
	vars := validVars()
	vars[config.EnvJWTSecret] = "signing-secret"
	vars[config.EnvDatabaseURL] = "postgres://localhost:5432/sraha"

	cfg, err := config.LoadFrom(fakeEnv(vars))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.EncryptionKey) != encryption.KeySize {
		t.Fatalf("EncryptionKey length = %d, want %d", len(cfg.EncryptionKey), encryption.KeySize)
	}
	if cfg.HashCost != 12 {
		t.Fatalf("HashCost = %d, want 12", cfg.HashCost)
	}
	if cfg.JWTSecret != "signing-secret" {
		t.Fatalf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.DatabaseURL != "postgres://localhost:5432/sraha" {
		t.Fatalf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}

func TestLoadFrom_OptionalValuesMayBeAbsent(t *testing.T) {
	cfg, err := config.LoadFrom(fakeEnv(validVars()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTSecret != "" || cfg.DatabaseURL != "" {
		t.Fatal("optional values should default to empty")
	}
}

func TestLoadFrom_FailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"missing key", func(v map[string]string) { delete(v, config.EnvEncryptionKey) }},
		{"key not hex", func(v map[string]string) { v[config.EnvEncryptionKey] = strings.Repeat("zz", 32) }},
		{"key too short", func(v map[string]string) { v[config.EnvEncryptionKey] = strings.Repeat("ab", 16) }},
		{"key too long", func(v map[string]string) { v[config.EnvEncryptionKey] = strings.Repeat("ab", 48) }},
		{"missing cost", func(v map[string]string) { delete(v, config.EnvHashCostFactor) }},
		{"cost not a number", func(v map[string]string) { v[config.EnvHashCostFactor] = "twelve" }},
		{"cost zero", func(v map[string]string) { v[config.EnvHashCostFactor] = "0" }},
		{"cost negative", func(v map[string]string) { v[config.EnvHashCostFactor] = "-4" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := validVars()
			tt.mutate(vars)
			_, err := config.LoadFrom(fakeEnv(vars))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, config.ErrConfiguration) {
				t.Fatalf("errors.Is(%v, ErrConfiguration) = false", err)
			}
		})
	}
}

// A malformed key attempt must not leak into the error text.
func TestLoadFrom_KeyNeverAppearsInErrors(t *testing.T) {
	vars := validVars()
	vars[config.EnvEncryptionKey] = strings.Repeat("ab", 16) // wrong length
	_, err := config.LoadFrom(fakeEnv(vars))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if strings.Contains(err.Error(), strings.Repeat("ab", 16)) {
		t.Fatalf("error text leaks key material: %v", err)
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv(config.EnvEncryptionKey, strings.Repeat("cd", 32))
	t.Setenv(config.EnvHashCostFactor, "10")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HashCost != 10 {
		t.Fatalf("HashCost = %d, want 10", cfg.HashCost)
	}
}

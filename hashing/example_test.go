package hashing_test

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/minanasr00/sraha-app/hashing"
)

// Example_basicUsage demonstrates hashing and verifying a password.
func Example_basicUsage() {
	// The cost factor normally comes from HASH_COST_FACTOR; MinCost keeps
	// the example fast.
	h, err := hashing.NewBcryptHasher(bcrypt.MinCost)
	if err != nil {
		log.Fatal(err)
	}

	hash, err := h.Hash("hunter2")
	if err != nil {
		log.Fatal(err)
	}

	ok, err := h.Verify("hunter2", hash)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)

	ok, _ = h.Verify("wrong", hash)
	fmt.Println(ok)
	// Output:
	// true
	// false
}

// Example_pool demonstrates the bounded-concurrency front used on request
// paths, where one slow hash must not block unrelated work.
func Example_pool() {
	h, _ := hashing.NewBcryptHasher(bcrypt.MinCost)
	pool := hashing.NewPool(h, hashing.DefaultPoolSize)

	ctx := context.Background()
	hash, err := pool.Hash(ctx, "hunter2")
	if err != nil {
		log.Fatal(err)
	}

	ok, err := pool.Verify(ctx, "hunter2", hash)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)
	// Output: true
}

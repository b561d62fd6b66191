package hashing

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// DefaultPoolSize is the default number of hashing operations allowed to run
// concurrently. Hashing is CPU-bound, so there is little point running more
// of it than there are cores; excess callers queue instead of piling onto
// the scheduler.
const DefaultPoolSize = 4

// Pool fronts a [Hasher] with a bounded concurrency limit.
//
// One bcrypt call at a production cost factor takes tens to hundreds of
// milliseconds of pure CPU. Left unbounded, a burst of signups or logins
// would saturate every core and stall unrelated work. Pool caps the number
// of in-flight hashing operations with a weighted semaphore; callers beyond
// the cap wait, honouring context cancellation while queued.
//
// Encryption and decryption are comparatively cheap and do not need this
// treatment.
type Pool struct {
	hasher Hasher
	sem    *semaphore.Weighted
}

// NewPool wraps hasher with a limit of size concurrent operations.
// A size of zero or less falls back to [DefaultPoolSize].
func NewPool(hasher Hasher, size int64) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &Pool{hasher: hasher, sem: semaphore.NewWeighted(size)}
}

// Hash hashes password through the underlying [Hasher], waiting for a free
// slot first. Returns the context's error if ctx is cancelled while queued.
func (p *Pool) Hash(ctx context.Context, password string) (string, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("hashing: pool: %w", err)
	}
	defer p.sem.Release(1)
	return p.hasher.Hash(password)
}

// Verify verifies password against hash through the underlying [Hasher],
// waiting for a free slot first. Returns the context's error if ctx is
// cancelled while queued.
func (p *Pool) Verify(ctx context.Context, password, hash string) (bool, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("hashing: pool: %w", err)
	}
	defer p.sem.Release(1)
	return p.hasher.Verify(password, hash)
}

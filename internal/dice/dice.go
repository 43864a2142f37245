// Package dice provides the randomness seam used by every combat roll.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source is the randomness provider for ability, armor and selection rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n must be > 0.
	Intn(n int) int
}

// globalSource draws from the math/rand package-level generator.
type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// Default returns the process-wide source. It carries no seeding contract.
func Default() Source {
	return globalSource{}
}

// seededSource wraps a private generator. rand.Rand is not safe for
// concurrent use, so access is serialized.
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *seededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// NewSeeded returns a source backed by its own generator seeded with seed.
func NewSeeded(seed int64) Source {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Between returns a uniformly distributed integer in [lo, hi] inclusive.
// If hi <= lo it returns lo without consuming randomness.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Or returns src, or the default source when src is nil.
func Or(src Source) Source {
	if src == nil {
		return Default()
	}
	return src
}

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Source creates seeded Random instances, one per generation
type Source interface {
	// NewSeed returns a fresh seed for callers that did not supply one
	NewSeed() int64

	// New returns a Random whose sequence is fully determined by seed
	New(seed int64) Random
}

// pcgStream is the fixed PCG increment; only the seed varies between runs
const pcgStream = 0x72616e6473747221

// SeededRandom implements Random using a PCG generator from math/rand/v2
type SeededRandom struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded creates a SeededRandom for the given seed
func NewSeeded(seed int64) *SeededRandom {
	return &SeededRandom{
		seed: seed,
		rng:  rand.New(rand.NewPCG(uint64(seed), pcgStream)),
	}
}

// Seed returns the seed this generator was created with
func (r *SeededRandom) Seed() int64 {
	return r.seed
}

// Intn returns a pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// PCGSource implements Source with OS-entropy seeds and SeededRandom generators
type PCGSource struct{}

// NewSource creates a new PCGSource
func NewSource() *PCGSource {
	return &PCGSource{}
}

// NewSeed returns a non-negative seed read from crypto/rand
func (s *PCGSource) NewSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// Fall back to the clock (should never happen with crypto/rand)
		return time.Now().UnixNano() & math.MaxInt64
	}
	return int64(binary.BigEndian.Uint64(buf[:]) & math.MaxInt64)
}

// New returns a SeededRandom for seed
func (s *PCGSource) New(seed int64) Random {
	return NewSeeded(seed)
}

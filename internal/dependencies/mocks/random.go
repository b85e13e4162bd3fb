package mocks

import (
	"github.com/mcoot/randstr/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// Calls records the bound n of every Intn call, in order
	Calls []int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	r.Calls = append(r.Calls, n)
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// MockSource is a mock implementation of Source that hands out a single MockRandom
type MockSource struct {
	Random *MockRandom

	// GeneratedSeed is returned from NewSeed
	GeneratedSeed int64

	// Seeds records every seed passed to New
	Seeds []int64
}

// Ensure MockSource implements Source
var _ random.Source = (*MockSource)(nil)

// NewMockSource creates a MockSource backed by rnd
func NewMockSource(rnd *MockRandom, generatedSeed int64) *MockSource {
	return &MockSource{Random: rnd, GeneratedSeed: generatedSeed}
}

// NewSeed returns the configured seed
func (s *MockSource) NewSeed() int64 {
	return s.GeneratedSeed
}

// New records seed and returns the shared MockRandom
func (s *MockSource) New(seed int64) random.Random {
	s.Seeds = append(s.Seeds, seed)
	return s.Random
}

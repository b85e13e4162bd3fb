package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandom_SameSeedSameSequence(t *testing.T) {
	a := NewSeeded(69)
	b := NewSeeded(69)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeededRandom_DifferentSeedsDiverge(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)

	same := 0
	for i := 0; i < 50; i++ {
		if a.Intn(1<<30) == b.Intn(1<<30) {
			same++
		}
	}
	assert.Less(t, same, 50)
}

func TestSeededRandom_IntnWithinBounds(t *testing.T) {
	r := NewSeeded(42)
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestSeededRandom_NonPositiveBound(t *testing.T) {
	r := NewSeeded(42)
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestSeededRandom_Seed(t *testing.T) {
	assert.Equal(t, int64(-5), NewSeeded(-5).Seed())
}

func TestPCGSource_NewSeedIsNonNegative(t *testing.T) {
	src := NewSource()
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, src.NewSeed(), int64(0))
	}
}

func TestPCGSource_NewMatchesNewSeeded(t *testing.T) {
	src := NewSource()
	a := src.New(123)
	b := NewSeeded(123)
	for i := 0; i < 20; i++ {
		assert.Equal(t, b.Intn(100), a.Intn(100))
	}
}

// Package sampler draws strings from a weighted alphabet, either with
// replacement or without replacement over the alphabet's occurrence slots.
package sampler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mcoot/randstr/internal/dependencies/random"
	"github.com/mcoot/randstr/internal/model"
)

// maxPrealloc caps up-front buffer sizing; longer outputs grow as they are written
const maxPrealloc = 1 << 16

// slotTable lays the alphabet out as total consecutive slots, with weight-many
// slots per rune in code point order
type slotTable struct {
	runes  []rune
	bounds []int // bounds[i] is the exclusive end slot of runes[i]
	total  int
}

func newSlotTable(alphabet model.WeightedAlphabet) slotTable {
	runes := alphabet.Runes()
	bounds := make([]int, len(runes))
	total := 0
	for i, r := range runes {
		total += alphabet[r]
		bounds[i] = total
	}
	return slotTable{runes: runes, bounds: bounds, total: total}
}

func (t slotTable) runeAt(slot int) rune {
	i := sort.Search(len(t.bounds), func(i int) bool { return t.bounds[i] > slot })
	return t.runes[i]
}

// Sample draws length characters from alphabet using rng. In unique mode
// every occurrence slot is drawn at most once. Characters are returned in
// draw order.
func Sample(rng random.Random, alphabet model.WeightedAlphabet, length int, unique bool) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("negative length %d", length)
	}
	if length > model.MaxLength {
		return "", fmt.Errorf("%w: length %d is too large", model.ErrMalformedLength, length)
	}

	table := newSlotTable(alphabet)
	if table.total == 0 {
		return "", model.ErrEmptyAlphabet
	}

	if unique {
		return sampleUnique(rng, table, length)
	}
	return sampleWithReplacement(rng, table, length), nil
}

func sampleWithReplacement(rng random.Random, table slotTable, length int) string {
	var b strings.Builder
	b.Grow(min(length, maxPrealloc))
	for i := 0; i < length; i++ {
		b.WriteRune(table.runeAt(rng.Intn(table.total)))
	}
	return b.String()
}

// sampleUnique runs a partial Fisher-Yates shuffle over the virtual slot
// space [0, total). Only displaced slots are stored, so memory grows with
// length rather than total.
func sampleUnique(rng random.Random, table slotTable, length int) (string, error) {
	if length > table.total {
		return "", fmt.Errorf("%w: cannot choose %d unique characters from alphabet of %d characters",
			model.ErrInsufficientAlphabet, length, table.total)
	}

	displaced := make(map[int]int, min(length, maxPrealloc))
	slotAt := func(i int) int {
		if slot, ok := displaced[i]; ok {
			return slot
		}
		return i
	}

	var b strings.Builder
	b.Grow(min(length, maxPrealloc))
	for i := 0; i < length; i++ {
		j := i + rng.Intn(table.total-i)
		chosen := slotAt(j)
		displaced[j] = slotAt(i)
		b.WriteRune(table.runeAt(chosen))
	}
	return b.String(), nil
}

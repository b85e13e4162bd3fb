package model

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// WeightedAlphabet maps each distinct character to the number of times it
// occurred across all sources. Weights are always positive.
type WeightedAlphabet map[rune]int

// CountRunes builds a WeightedAlphabet from the occurrences in s
func CountRunes(s string) WeightedAlphabet {
	alphabet := make(WeightedAlphabet)
	for _, r := range s {
		alphabet[r]++
	}
	return alphabet
}

// Runes returns the distinct characters sorted by code point
func (a WeightedAlphabet) Runes() []rune {
	return slices.Sorted(maps.Keys(a))
}

// Weight returns the weight of r, or 0 if r is not in the alphabet
func (a WeightedAlphabet) Weight(r rune) int {
	return a[r]
}

// Total returns the sum of all weights
func (a WeightedAlphabet) Total() int {
	total := 0
	for _, w := range a {
		total += w
	}
	return total
}

// String dumps the alphabet in code point order, e.g. {'a': 1, 'b': 2}
func (a WeightedAlphabet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range a.Runes() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.QuoteRune(r))
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(a[r]))
	}
	b.WriteByte('}')
	return b.String()
}

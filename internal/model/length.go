package model

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// MaxLength is the largest length a string can be built at without its
// byte size overflowing int
const MaxLength = math.MaxInt / utf8.UTFMax

// LengthRange is the half-open interval [Low, HighExclusive) a string length is drawn from
type LengthRange struct {
	Low           int
	HighExclusive int
}

// FixedLength returns the single-value range for n
func FixedLength(n int) LengthRange {
	return LengthRange{Low: n, HighExclusive: n + 1}
}

// High returns the inclusive upper bound
func (r LengthRange) High() int {
	return r.HighExclusive - 1
}

// IsFixed reports whether the range holds exactly one length
func (r LengthRange) IsFixed() bool {
	return r.HighExclusive-r.Low == 1
}

// Size returns the number of lengths in the range
func (r LengthRange) Size() int {
	return r.HighExclusive - r.Low
}

// String renders the range in the same form it is parsed from
func (r LengthRange) String() string {
	if r.IsFixed() {
		return fmt.Sprintf("%d", r.Low)
	}
	return fmt.Sprintf("%d-%d", r.Low, r.High())
}

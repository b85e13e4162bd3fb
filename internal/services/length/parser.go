// Package length parses length specifiers of the form "N" or "LO-HI" and
// draws a concrete length from the parsed range.
package length

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/randstr/internal/dependencies/random"
	"github.com/mcoot/randstr/internal/model"
)

// Parse converts a length specifier into a LengthRange
func Parse(text string) (model.LengthRange, error) {
	parts := strings.Split(text, "-")

	switch len(parts) {
	case 1:
		n, err := parseBound(text)
		if err != nil {
			return model.LengthRange{}, err
		}
		return model.FixedLength(n), nil

	case 2:
		lo, err := parseBound(parts[0])
		if err != nil {
			return model.LengthRange{}, err
		}
		hi, err := parseBound(parts[1])
		if err != nil {
			return model.LengthRange{}, err
		}
		if lo > hi {
			return model.LengthRange{}, fmt.Errorf("%w: lower bound %d is larger than upper bound %d in %q",
				model.ErrInvertedRange, lo, hi, text)
		}
		return model.LengthRange{Low: lo, HighExclusive: hi + 1}, nil

	default:
		return model.LengthRange{}, fmt.Errorf("%w: expected NUM or LO-HI, got %q", model.ErrMalformedLength, text)
	}
}

// parseBound accepts a plain run of decimal digits
func parseBound(s string) (int, error) {
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, fmt.Errorf("%w: expected non-negative integer, got %q", model.ErrMalformedLength, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > model.MaxLength {
		return 0, fmt.Errorf("%w: %q is out of range", model.ErrMalformedLength, s)
	}
	return n, nil
}

// Choose draws a length uniformly from r. Exactly one random number is
// consumed, even for a fixed length.
func Choose(rng random.Random, r model.LengthRange) int {
	return r.Low + rng.Intn(r.Size())
}

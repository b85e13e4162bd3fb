// Package charclass maps single-letter class flags to fixed ASCII character sets.
package charclass

import (
	"maps"
	"slices"
	"strings"
)

// ASCII character sets
const (
	Whitespace  = " \t\n\r\v\f"
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters     = Lowercase + Uppercase
	Digits      = "0123456789"
	HexDigits   = Digits + "abcdef" + "ABCDEF"
	OctDigits   = "01234567"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	Printable   = Digits + Letters + Punctuation + Whitespace
)

// Class flags
const (
	FlagWhitespace  = 'S'
	FlagLowercase   = 'L'
	FlagUppercase   = 'U'
	FlagLetters     = 'A'
	FlagDigits      = 'D'
	FlagHexDigits   = 'H'
	FlagOctDigits   = 'O'
	FlagPunctuation = 'P'
	FlagPrintable   = '*'
)

var registry = map[rune]string{
	FlagWhitespace:  Whitespace,
	FlagLowercase:   Lowercase,
	FlagUppercase:   Uppercase,
	FlagLetters:     Letters,
	FlagDigits:      Digits,
	FlagHexDigits:   HexDigits,
	FlagOctDigits:   OctDigits,
	FlagPunctuation: Punctuation,
	FlagPrintable:   Printable,
}

// Flags returns every recognised flag in documentation order
func Flags() []rune {
	return []rune{
		FlagWhitespace, FlagLowercase, FlagUppercase, FlagLetters,
		FlagDigits, FlagHexDigits, FlagOctDigits, FlagPunctuation, FlagPrintable,
	}
}

// Lookup returns the character set for a flag
func Lookup(flag rune) (string, bool) {
	charset, ok := registry[flag]
	return charset, ok
}

// Resolve returns the union of the sets named by flags, sorted by code point,
// along with any flags that were not recognised (in input order).
func Resolve(flags string) (string, []rune) {
	union := make(map[rune]struct{})
	var unknown []rune

	for _, flag := range flags {
		charset, ok := registry[flag]
		if !ok {
			unknown = append(unknown, flag)
			continue
		}
		for _, r := range charset {
			union[r] = struct{}{}
		}
	}

	var b strings.Builder
	for _, r := range slices.Sorted(maps.Keys(union)) {
		b.WriteRune(r)
	}
	return b.String(), unknown
}

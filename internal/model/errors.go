package model

import "errors"

// Common errors used across the application
var (
	// Length errors
	ErrMalformedLength = errors.New("malformed length")
	ErrInvertedRange   = errors.New("inverted length range")

	// Source errors
	ErrUnreadableSource = errors.New("unreadable source")
	ErrUnknownClassFlag = errors.New("unknown character class flag")

	// Sampling errors
	ErrInsufficientAlphabet = errors.New("insufficient alphabet")
	ErrEmptyAlphabet        = errors.New("empty alphabet")

	// Journal errors
	ErrRunNotFound = errors.New("run not found")
)

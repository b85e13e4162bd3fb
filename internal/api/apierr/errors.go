package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mcoot/randstr/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeMalformedLength      = "MALFORMED_LENGTH"
	CodeInvertedRange        = "INVERTED_RANGE"
	CodeInsufficientAlphabet = "INSUFFICIENT_ALPHABET"
	CodeLengthTooLarge       = "LENGTH_TOO_LARGE"
	CodeRunNotFound          = "RUN_NOT_FOUND"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Domain errors carry the offending input in their message
	switch {
	case errors.Is(err, model.ErrMalformedLength):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedLength, err.Error()}}
	case errors.Is(err, model.ErrInvertedRange):
		return &httpError{http.StatusBadRequest, APIError{CodeInvertedRange, err.Error()}}
	case errors.Is(err, model.ErrInsufficientAlphabet):
		return &httpError{http.StatusBadRequest, APIError{CodeInsufficientAlphabet, err.Error()}}
	case errors.Is(err, model.ErrRunNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRunNotFound, "Run not found"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewLengthTooLargeError reports a requested length above the server limit
func NewLengthTooLargeError(limit int) error {
	return &httpError{http.StatusBadRequest, APIError{CodeLengthTooLarge,
		fmt.Sprintf("length may not exceed %d", limit)}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

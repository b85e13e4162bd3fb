package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/randstr/internal/api/apierr"
	"github.com/mcoot/randstr/internal/api/request"
	"github.com/mcoot/randstr/internal/api/response"
	"github.com/mcoot/randstr/internal/services/generator"
	"github.com/mcoot/randstr/internal/services/length"
)

// DefaultMaxLength bounds the longest string the API will generate
const DefaultMaxLength = 1 << 16

// StringsHandler handles string generation endpoints
type StringsHandler struct {
	generator *generator.Service
	maxLength int
}

// NewStringsHandler creates a new strings handler. A maxLength of zero
// selects DefaultMaxLength.
func NewStringsHandler(generatorService *generator.Service, maxLength int) *StringsHandler {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &StringsHandler{
		generator: generatorService,
		maxLength: maxLength,
	}
}

// Generate handles POST /api/v1/strings
func (h *StringsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	// Reject oversized requests before any work is done
	if err := checkLength(req.Length, h.maxLength); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.generator.Generate(r.Context(), generator.Request{
		Length:   req.Length,
		Literals: req.Alphabet,
		Classes:  req.Classes,
		Unique:   req.Unique,
		Seed:     req.Seed,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GeneratedStringFromResult(result))
}

// checkLength parses a length specifier and rejects ranges whose upper
// bound exceeds maxLength
func checkLength(spec string, maxLength int) error {
	lengthRange, err := length.Parse(spec)
	if err != nil {
		return err
	}
	if lengthRange.High() > maxLength {
		return apierr.NewLengthTooLargeError(maxLength)
	}
	return nil
}

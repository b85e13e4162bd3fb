package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/randstr/internal/api/response"
	"github.com/mcoot/randstr/internal/model"
	"github.com/mcoot/randstr/internal/services/generator"
)

const (
	defaultRunLimit = 20
	maxRunLimit     = 1000
)

// RunsHandler handles run journal endpoints
type RunsHandler struct {
	generator *generator.Service
	maxLength int
}

// NewRunsHandler creates a new runs handler. Replays are held to the same
// maxLength as fresh requests, with zero selecting DefaultMaxLength.
func NewRunsHandler(generatorService *generator.Service, maxLength int) *RunsHandler {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &RunsHandler{
		generator: generatorService,
		maxLength: maxLength,
	}
}

// List handles GET /api/v1/runs
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRunLimit {
			WriteError(w, NewInvalidRequestError("limit must be between 1 and "+strconv.Itoa(maxRunLimit)))
			return
		}
		limit = n
	}

	runs, err := h.generator.History(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RunListFromModel(runs))
}

// Get handles GET /api/v1/runs/{id}
func (h *RunsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.RunID(mux.Vars(r)["id"])

	run, err := h.generator.GetRun(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RunFromModel(run))
}

// Replay handles POST /api/v1/runs/{id}/replay
func (h *RunsHandler) Replay(w http.ResponseWriter, r *http.Request) {
	id := model.RunID(mux.Vars(r)["id"])

	run, err := h.generator.GetRun(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	// The server never reads files named by a client
	if len(run.FilePaths) > 0 {
		WriteError(w, NewInvalidRequestError("Runs with file sources cannot be replayed over HTTP"))
		return
	}
	// Runs journalled by the CLI are not bound by the server's limit
	if err := checkLength(run.Length, h.maxLength); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.generator.Replay(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GeneratedStringFromResult(result))
}

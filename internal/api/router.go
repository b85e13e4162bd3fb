package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/randstr/internal/api/handler"
	"github.com/mcoot/randstr/internal/api/middleware"
	"github.com/mcoot/randstr/internal/api/response"
	"github.com/mcoot/randstr/internal/services/generator"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	GeneratorService *generator.Service
	// MaxLength caps generated string length; zero uses handler.DefaultMaxLength
	MaxLength int
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	stringsHandler := handler.NewStringsHandler(cfg.GeneratorService, cfg.MaxLength)
	runsHandler := handler.NewRunsHandler(cfg.GeneratorService, cfg.MaxLength)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/strings", stringsHandler.Generate).Methods(http.MethodPost)

	api.HandleFunc("/runs", runsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/runs/{id}", runsHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/runs/{id}/replay", runsHandler.Replay).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

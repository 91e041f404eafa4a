package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rpsgame/rpsgame-go/internal/api/handler"
	"github.com/rpsgame/rpsgame-go/internal/api/middleware"
	"github.com/rpsgame/rpsgame-go/internal/services/session"
	"github.com/rpsgame/rpsgame-go/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	HubManager        *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.HubManager, cfg.Logger)
	eventsHandler := handler.NewEventsHandler(cfg.SessionController, cfg.HubManager)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session lifecycle routes
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{code}/players", sessionHandler.Join).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/start", sessionHandler.Start).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/commits", sessionHandler.Commit).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/reveals", sessionHandler.Reveal).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/score", sessionHandler.Score).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/next-round", sessionHandler.NextRound).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/scores", sessionHandler.Scores).Methods(http.MethodGet)

	// Event stream for spectators and waiting players
	sessions.HandleFunc("/{code}/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psyguage/psyguage-server/internal/api/handler"
	"github.com/psyguage/psyguage-server/internal/api/middleware"
	"github.com/psyguage/psyguage-server/internal/services/auth"
	"github.com/psyguage/psyguage-server/internal/services/feedback"
	"github.com/psyguage/psyguage-server/internal/services/score"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	ScoreService    *score.Service
	FeedbackService *feedback.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	scoreHandler := handler.NewScoreHandler(cfg.ScoreService)
	feedbackHandler := handler.NewFeedbackHandler(cfg.FeedbackService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Root route
	r.HandleFunc("/", welcomeHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Auth routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Verify requires a valid bearer token
	verify := api.PathPrefix("/auth/verify").Subrouter()
	verify.Use(authMiddleware)
	verify.HandleFunc("", authHandler.Verify).Methods(http.MethodGet)

	// Score routes (no auth; see service notes on referential integrity)
	api.HandleFunc("/scores", scoreHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/getscores", scoreHandler.GetByEmail).Methods(http.MethodGet)

	// Feedback routes
	api.HandleFunc("/feedback", feedbackHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/feedback", feedbackHandler.List).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func welcomeHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Welcome to PsyGuage Backend API!"))
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

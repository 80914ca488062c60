package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/psyguage/psyguage-server/internal/dependencies/clock"
	"github.com/psyguage/psyguage-server/internal/services/auth"
	"github.com/psyguage/psyguage-server/internal/services/feedback"
	"github.com/psyguage/psyguage-server/internal/services/score"
	"github.com/psyguage/psyguage-server/internal/storage"
	"github.com/psyguage/psyguage-server/internal/storage/memory"
	redisstorage "github.com/psyguage/psyguage-server/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultTokenTTL matches the original deployment's 7-day token lifetime
const DefaultTokenTTL = 7 * 24 * time.Hour

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService     *auth.Service
	ScoreService    *score.Service
	FeedbackService *feedback.Service
}

// Config holds configuration for the application factory
type Config struct {
	// JWTSecret signs session tokens (required, no fallback)
	JWTSecret []byte
	// TokenTTL is the session token lifetime (optional)
	// If zero, defaults to DefaultTokenTTL
	TokenTTL time.Duration
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWTSecret is required")
	}

	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	ttl := cfg.TokenTTL
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}

	return newWithDependencies(store, clock.New(), cfg.JWTSecret, ttl), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, secret []byte, ttl time.Duration) *App {
	issuer := auth.NewIssuer(secret, ttl, clk)

	return &App{
		Storage:         store,
		Clock:           clk,
		AuthService:     auth.New(store, issuer, clk),
		ScoreService:    score.New(store, clk),
		FeedbackService: feedback.New(store, clk),
	}
}

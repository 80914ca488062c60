package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/psyguage/psyguage-server/internal/model"
	"github.com/psyguage/psyguage-server/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

// userRecord is the stored form of a user. model.User excludes the password
// hash from JSON, so persistence goes through this type with its own tags to
// keep the hash on the round trip.
type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func recordFromUser(user *model.User) userRecord {
	return userRecord{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

func (r userRecord) toUser() *model.User {
	return &model.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// CreateUser stores the user with SETNX so the uniqueness check and the
// insert are a single atomic operation on the store.
func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(recordFromUser(user))
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, userKey(user.Email), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrUserExists
	}
	return nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var record userRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return record.toUser(), nil
}

// Score operations

// SaveScore appends to the per-email list; RPUSH preserves insertion order.
func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	return s.client.RPush(ctx, scoresKey(score.Email), data).Err()
}

func (s *Storage) GetScoresByEmail(ctx context.Context, email string) ([]*model.Score, error) {
	items, err := s.client.LRange(ctx, scoresKey(email), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.ErrNoScores
	}

	scores := make([]*model.Score, 0, len(items))
	for _, item := range items {
		var score model.Score
		if err := json.Unmarshal([]byte(item), &score); err != nil {
			return nil, err
		}
		scores = append(scores, &score)
	}
	return scores, nil
}

// Feedback operations

func (s *Storage) SaveFeedback(ctx context.Context, fb *model.Feedback) error {
	data, err := json.Marshal(fb)
	if err != nil {
		return err
	}

	// LPUSH so that LRANGE reads newest first
	return s.client.LPush(ctx, feedbackKey(), data).Err()
}

func (s *Storage) ListFeedback(ctx context.Context) ([]*model.Feedback, error) {
	items, err := s.client.LRange(ctx, feedbackKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	feedback := make([]*model.Feedback, 0, len(items))
	for _, item := range items {
		var fb model.Feedback
		if err := json.Unmarshal([]byte(item), &fb); err != nil {
			return nil, err
		}
		feedback = append(feedback, &fb)
	}
	return feedback, nil
}

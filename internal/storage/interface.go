package storage

import (
	"context"

	"github.com/psyguage/psyguage-server/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations. CreateUser must enforce email uniqueness
	// atomically and return model.ErrUserExists on a duplicate; callers
	// never check-then-insert.
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// Score operations. Scores are append-only; GetScoresByEmail returns
	// records in insertion order and model.ErrNoScores when there are none.
	SaveScore(ctx context.Context, score *model.Score) error
	GetScoresByEmail(ctx context.Context, email string) ([]*model.Score, error)

	// Feedback operations. ListFeedback returns newest first.
	SaveFeedback(ctx context.Context, fb *model.Feedback) error
	ListFeedback(ctx context.Context) ([]*model.Feedback, error)
}

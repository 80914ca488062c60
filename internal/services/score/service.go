package score

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/psyguage/psyguage-server/internal/dependencies/clock"
	"github.com/psyguage/psyguage-server/internal/model"
	"github.com/psyguage/psyguage-server/internal/storage"
)

// Errors
var (
	ErrMissingFields = errors.New("missing required fields")
)

// Submission is a score record as submitted by a game client. Score is a
// pointer so that an absent field can be told apart from a zero score.
type Submission struct {
	GameName           string
	Name               string
	Email              string
	Score              *float64
	ResponseSymbolTime float64
	CorrectSymbolCount bool
}

// Service validates and persists score submissions and answers per-account
// queries. The account email is not checked against the user store; score
// writes are accepted for any identity.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new score service
func New(storage storage.Storage, clk clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
	}
}

// Submit validates a submission, stamps it with the server time, and
// appends it to the record store.
func (s *Service) Submit(ctx context.Context, sub Submission) (*model.Score, error) {
	if sub.GameName == "" || sub.Name == "" || sub.Email == "" || sub.Score == nil {
		return nil, ErrMissingFields
	}

	record := &model.Score{
		ID:                 uuid.NewString(),
		GameName:           sub.GameName,
		Name:               sub.Name,
		Email:              sub.Email,
		Score:              *sub.Score,
		ResponseSymbolTime: sub.ResponseSymbolTime,
		CorrectSymbolCount: sub.CorrectSymbolCount,
		CreatedAt:          s.clock.Now(),
	}

	if err := s.storage.SaveScore(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ScoresByEmail returns all records for an account, highest score first.
// Ties keep insertion order. Returns model.ErrNoScores when the account
// has no records.
func (s *Service) ScoresByEmail(ctx context.Context, email string) ([]*model.Score, error) {
	scores, err := s.storage.GetScoresByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	return scores, nil
}

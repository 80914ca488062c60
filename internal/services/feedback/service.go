package feedback

import (
	"context"

	"github.com/google/uuid"

	"github.com/psyguage/psyguage-server/internal/dependencies/clock"
	"github.com/psyguage/psyguage-server/internal/model"
	"github.com/psyguage/psyguage-server/internal/storage"
)

// Submission is a feedback message as submitted by a client.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Service persists user feedback and lists it for review.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new feedback service
func New(storage storage.Storage, clk clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
	}
}

// Submit stores a feedback entry stamped with the server time.
func (s *Service) Submit(ctx context.Context, sub Submission) (*model.Feedback, error) {
	fb := &model.Feedback{
		ID:        uuid.NewString(),
		Name:      sub.Name,
		Email:     sub.Email,
		Message:   sub.Message,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveFeedback(ctx, fb); err != nil {
		return nil, err
	}

	return fb, nil
}

// List returns all feedback entries, newest first.
func (s *Service) List(ctx context.Context) ([]*model.Feedback, error) {
	return s.storage.ListFeedback(ctx)
}

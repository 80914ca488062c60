package memory

import (
	"context"
	"sync"

	"github.com/psyguage/psyguage-server/internal/model"
	"github.com/psyguage/psyguage-server/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	usersByEmail map[string]*model.User
	scores       map[string][]*model.Score
	feedback     []*model.Feedback
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		usersByEmail: make(map[string]*model.User),
		scores:       make(map[string][]*model.Score),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

// CreateUser inserts the user, holding the lock across the existence check
// so two concurrent registrations with the same email cannot both succeed.
func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByEmail[user.Email]; ok {
		return model.ErrUserExists
	}
	s.usersByEmail[user.Email] = user
	return nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.usersByEmail[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[score.Email] = append(s.scores[score.Email], score)
	return nil
}

func (s *Storage) GetScoresByEmail(ctx context.Context, email string) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scores, ok := s.scores[email]
	if !ok || len(scores) == 0 {
		return nil, model.ErrNoScores
	}
	result := make([]*model.Score, len(scores))
	copy(result, scores)
	return result, nil
}

// Feedback operations

func (s *Storage) SaveFeedback(ctx context.Context, fb *model.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, fb)
	return nil
}

func (s *Storage) ListFeedback(ctx context.Context) ([]*model.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Feedback, 0, len(s.feedback))
	for i := len(s.feedback) - 1; i >= 0; i-- {
		result = append(result, s.feedback[i])
	}
	return result, nil
}

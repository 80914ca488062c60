package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/psyguage/psyguage-server/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	user := &model.User{
		ID:           "user-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.CreateUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUserByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal(user.Name, retrieved.Name)
	s.Equal(user.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUserByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestCreateUserDuplicateEmail() {
	user := &model.User{ID: "user-1", Email: "alice@example.com"}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	dup := &model.User{ID: "user-2", Email: "alice@example.com", PasswordHash: "other"}
	err := s.storage.CreateUser(s.ctx, dup)
	s.ErrorIs(err, model.ErrUserExists)

	// First write wins
	retrieved, err := s.storage.GetUserByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("user-1", retrieved.ID)
}

// Score tests

func (s *StorageSuite) TestSaveAndGetScores() {
	score := &model.Score{
		ID:       "score-1",
		GameName: "symbol-match",
		Email:    "alice@example.com",
		Score:    42,
	}

	err := s.storage.SaveScore(s.ctx, score)
	s.Require().NoError(err)

	scores, err := s.storage.GetScoresByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal("score-1", scores[0].ID)
	s.Equal(float64(42), scores[0].Score)
}

func (s *StorageSuite) TestGetScoresEmpty() {
	_, err := s.storage.GetScoresByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrNoScores)
}

func (s *StorageSuite) TestGetScoresPreservesInsertionOrder() {
	for _, id := range []string{"a", "b", "c"} {
		err := s.storage.SaveScore(s.ctx, &model.Score{ID: id, Email: "alice@example.com", Score: 10})
		s.Require().NoError(err)
	}

	scores, err := s.storage.GetScoresByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Require().Len(scores, 3)
	s.Equal("a", scores[0].ID)
	s.Equal("b", scores[1].ID)
	s.Equal("c", scores[2].ID)
}

func (s *StorageSuite) TestScoresIsolatedByEmail() {
	s.Require().NoError(s.storage.SaveScore(s.ctx, &model.Score{ID: "a", Email: "alice@example.com"}))
	s.Require().NoError(s.storage.SaveScore(s.ctx, &model.Score{ID: "b", Email: "bob@example.com"}))

	scores, err := s.storage.GetScoresByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal("a", scores[0].ID)
}

// Feedback tests

func (s *StorageSuite) TestFeedbackNewestFirst() {
	for _, id := range []string{"f1", "f2", "f3"} {
		err := s.storage.SaveFeedback(s.ctx, &model.Feedback{ID: id, Message: "hi"})
		s.Require().NoError(err)
	}

	feedback, err := s.storage.ListFeedback(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feedback, 3)
	s.Equal("f3", feedback[0].ID)
	s.Equal("f1", feedback[2].ID)
}

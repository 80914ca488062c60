package score

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/psyguage/psyguage-server/internal/dependencies/mocks"
	"github.com/psyguage/psyguage-server/internal/model"
	"github.com/psyguage/psyguage-server/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock)
	s.ctx = context.Background()
}

func (s *ServiceSuite) submission(score float64) Submission {
	return Submission{
		GameName:           "symbol-match",
		Name:               "Ann",
		Email:              "ann@x.com",
		Score:              &score,
		ResponseSymbolTime: 1.25,
		CorrectSymbolCount: true,
	}
}

// Submit tests

func (s *ServiceSuite) TestSubmitSucceeds() {
	record, err := s.service.Submit(s.ctx, s.submission(42))
	s.Require().NoError(err)

	s.NotEmpty(record.ID)
	s.Equal("symbol-match", record.GameName)
	s.Equal(float64(42), record.Score)
	s.Equal(s.clock.CurrentTime, record.CreatedAt)
}

func (s *ServiceSuite) TestSubmitPersistsRecord() {
	_, err := s.service.Submit(s.ctx, s.submission(42))
	s.Require().NoError(err)

	scores, err := s.storage.GetScoresByEmail(s.ctx, "ann@x.com")
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(float64(42), scores[0].Score)
}

func (s *ServiceSuite) TestSubmitFailsWithoutScore() {
	sub := s.submission(0)
	sub.Score = nil

	_, err := s.service.Submit(s.ctx, sub)
	s.ErrorIs(err, ErrMissingFields)
}

func (s *ServiceSuite) TestSubmitZeroScoreIsValid() {
	record, err := s.service.Submit(s.ctx, s.submission(0))
	s.Require().NoError(err)
	s.Equal(float64(0), record.Score)
}

func (s *ServiceSuite) TestSubmitFailsOnMissingFields() {
	for _, mutate := range []func(*Submission){
		func(sub *Submission) { sub.GameName = "" },
		func(sub *Submission) { sub.Name = "" },
		func(sub *Submission) { sub.Email = "" },
	} {
		sub := s.submission(42)
		mutate(&sub)

		_, err := s.service.Submit(s.ctx, sub)
		s.ErrorIs(err, ErrMissingFields)
	}
}

func (s *ServiceSuite) TestSubmitCreatedAtNonDecreasing() {
	first, err := s.service.Submit(s.ctx, s.submission(1))
	s.Require().NoError(err)

	s.clock.Advance(time.Second)

	second, err := s.service.Submit(s.ctx, s.submission(2))
	s.Require().NoError(err)

	s.False(second.CreatedAt.Before(first.CreatedAt))
}

// Query tests

func (s *ServiceSuite) TestScoresByEmailSortedDescending() {
	for _, v := range []float64{10, 30, 20} {
		_, err := s.service.Submit(s.ctx, s.submission(v))
		s.Require().NoError(err)
	}

	scores, err := s.service.ScoresByEmail(s.ctx, "ann@x.com")
	s.Require().NoError(err)
	s.Require().Len(scores, 3)
	s.Equal(float64(30), scores[0].Score)
	s.Equal(float64(20), scores[1].Score)
	s.Equal(float64(10), scores[2].Score)
}

func (s *ServiceSuite) TestScoresByEmailTiesKeepInsertionOrder() {
	for _, name := range []string{"first", "second", "third"} {
		sub := s.submission(10)
		sub.GameName = name
		_, err := s.service.Submit(s.ctx, sub)
		s.Require().NoError(err)
	}

	scores, err := s.service.ScoresByEmail(s.ctx, "ann@x.com")
	s.Require().NoError(err)
	s.Require().Len(scores, 3)
	s.Equal("first", scores[0].GameName)
	s.Equal("second", scores[1].GameName)
	s.Equal("third", scores[2].GameName)
}

func (s *ServiceSuite) TestScoresByEmailEmpty() {
	_, err := s.service.ScoresByEmail(s.ctx, "nobody@x.com")
	s.ErrorIs(err, model.ErrNoScores)
}

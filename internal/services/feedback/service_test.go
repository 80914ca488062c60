package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/psyguage/psyguage-server/internal/dependencies/mocks"
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

func (s *ServiceSuite) TestSubmitStampsTimeAndID() {
	fb, err := s.service.Submit(s.ctx, Submission{
		Name:    "Ann",
		Email:   "ann@x.com",
		Message: "great game",
	})
	s.Require().NoError(err)

	s.NotEmpty(fb.ID)
	s.Equal(s.clock.CurrentTime, fb.CreatedAt)
	s.Equal("great game", fb.Message)
}

func (s *ServiceSuite) TestListNewestFirst() {
	for _, msg := range []string{"first", "second", "third"} {
		_, err := s.service.Submit(s.ctx, Submission{Name: "Ann", Email: "ann@x.com", Message: msg})
		s.Require().NoError(err)
		s.clock.Advance(time.Minute)
	}

	feedback, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feedback, 3)
	s.Equal("third", feedback[0].Message)
	s.Equal("first", feedback[2].Message)
}

package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/psyguage/psyguage-server/internal/services/auth"
	"github.com/psyguage/psyguage-server/internal/services/score"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: complete account and score flow across wired services
func (s *IntegrationSuite) TestAccountAndScoreFlow() {
	// Step 1: Register an account
	user, err := s.app.AuthService.Register(s.ctx, "Ann", "ann@x.com", "pw123")
	s.Require().NoError(err)
	s.NotEmpty(user.ID)

	// Step 2: Login and verify the issued token
	session, err := s.app.AuthService.Login(s.ctx, "ann@x.com", "pw123")
	s.Require().NoError(err)

	claims, err := s.app.AuthService.Verify(session.Token)
	s.Require().NoError(err)
	s.Equal("ann@x.com", claims.Email)

	// Step 3: Submit scores and query them back ordered
	for _, v := range []float64{10, 30, 20} {
		value := v
		_, err := s.app.ScoreService.Submit(s.ctx, score.Submission{
			GameName: "symbol-match",
			Name:     "Ann",
			Email:    "ann@x.com",
			Score:    &value,
		})
		s.Require().NoError(err)
	}

	scores, err := s.app.ScoreService.ScoresByEmail(s.ctx, "ann@x.com")
	s.Require().NoError(err)
	s.Require().Len(scores, 3)
	s.Equal(float64(30), scores[0].Score)

	// Step 4: Token expires once the TTL elapses
	s.app.MockClock.Advance(2 * time.Hour)
	_, err = s.app.AuthService.Verify(session.Token)
	s.ErrorIs(err, auth.ErrTokenExpired)
}

func (s *IntegrationSuite) TestNewRequiresSecret() {
	_, err := New(Config{})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorageType() {
	_, err := New(Config{JWTSecret: []byte("secret"), StorageType: "bogus"})
	s.Error(err)
}

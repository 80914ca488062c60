package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/psyguage/psyguage-server/internal/dependencies/mocks"
	"github.com/psyguage/psyguage-server/internal/storage/memory"
	redisstorage "github.com/psyguage/psyguage-server/internal/storage/redis"
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
	issuer := NewIssuer([]byte("test-secret"), time.Hour, s.clock)
	s.service = New(s.storage, issuer, s.clock)
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	user, err := s.service.Register(s.ctx, "Ann", "ann@x.com", "pw123")
	s.Require().NoError(err)

	s.NotEmpty(user.ID)
	s.Equal("Ann", user.Name)
	s.Equal("ann@x.com", user.Email)
}

func (s *ServiceSuite) TestRegisterPersistsHashedPassword() {
	_, err := s.service.Register(s.ctx, "Ann", "ann@x.com", "pw123")
	s.Require().NoError(err)

	stored, err := s.storage.GetUserByEmail(s.ctx, "ann@x.com")
	s.Require().NoError(err)
	s.NotEmpty(stored.PasswordHash)
	s.NotEqual("pw123", stored.PasswordHash)
}

func (s *ServiceSuite) TestRegisterFailsOnMissingFields() {
	_, err := s.service.Register(s.ctx, "", "ann@x.com", "pw123")
	s.ErrorIs(err, ErrMissingFields)

	_, err = s.service.Register(s.ctx, "Ann", "", "pw123")
	s.ErrorIs(err, ErrMissingFields)

	_, err = s.service.Register(s.ctx, "Ann", "ann@x.com", "")
	s.ErrorIs(err, ErrMissingFields)
}

func (s *ServiceSuite) TestRegisterFailsOnDuplicateEmail() {
	_, err := s.service.Register(s.ctx, "Ann", "ann@x.com", "pw123")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "Other", "ann@x.com", "different")
	s.ErrorIs(err, ErrEmailExists)
}

func (s *ServiceSuite) TestRegisterConcurrentSameEmail() {
	const n = 8

	var wg sync.WaitGroup
	results := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Register(s.ctx, "Ann", "ann@x.com", "pw123")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else {
			s.ErrorIs(err, ErrEmailExists)
		}
	}
	s.Equal(1, successes)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, err := s.service.Register(s.ctx, "Ann", "ann@x.com", "pw123")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "ann@x.com", "pw123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("Ann", session.User.Name)
	s.Equal("ann@x.com", session.User.Email)
}

// The credential round trip must survive the persistent backend too: the
// stored hash has to come back intact for login to succeed.
func (s *ServiceSuite) TestLoginWithRedisBackedStorage() {
	mini := miniredis.RunT(s.T())
	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	store := redisstorage.NewWithClient(client, redisstorage.DefaultConfig())
	defer func() { _ = store.Close() }()

	issuer := NewIssuer([]byte("test-secret"), time.Hour, s.clock)
	svc := New(store, issuer, s.clock)

	_, err := svc.Register(s.ctx, "Ann", "ann@x.com", "pw123")
	s.Require().NoError(err)

	session, err := svc.Login(s.ctx, "ann@x.com", "pw123")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)

	_, err = svc.Login(s.ctx, "ann@x.com", "wrongpw")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.Register(s.ctx, "Ann", "ann@x.com", "pw123")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "ann@x.com", "wrongpw")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nobody@x.com", "pw123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginErrorsAreIndistinguishable() {
	_, err := s.service.Register(s.ctx, "Ann", "ann@x.com", "pw123")
	s.Require().NoError(err)

	_, wrongPass := s.service.Login(s.ctx, "ann@x.com", "wrongpw")
	_, unknownUser := s.service.Login(s.ctx, "nobody@x.com", "pw123")
	s.Equal(wrongPass, unknownUser)
}

// Verify tests

func (s *ServiceSuite) TestVerifyIssuedToken() {
	_, err := s.service.Register(s.ctx, "Ann", "ann@x.com", "pw123")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "ann@x.com", "pw123")
	s.Require().NoError(err)

	claims, err := s.service.Verify(session.Token)
	s.Require().NoError(err)
	s.Equal("ann@x.com", claims.Email)
	s.Equal("Ann", claims.Name)
}

func (s *ServiceSuite) TestVerifyExpiredToken() {
	_, err := s.service.Register(s.ctx, "Ann", "ann@x.com", "pw123")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "ann@x.com", "pw123")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)

	_, err = s.service.Verify(session.Token)
	s.ErrorIs(err, ErrTokenExpired)
}

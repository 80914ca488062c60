package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/psyguage/psyguage-server/internal/dependencies/clock"
	"github.com/psyguage/psyguage-server/internal/model"
	"github.com/psyguage/psyguage-server/internal/storage"
)

// Errors
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
)

// Session is the result of a successful login: a bearer token plus the
// non-secret profile fields. The password hash is never included.
type Session struct {
	Token string
	User  model.User
}

// Service handles registration, login, and token verification
type Service struct {
	storage storage.Storage
	issuer  *Issuer
	clock   clock.Clock
}

// New creates a new auth service
func New(storage storage.Storage, issuer *Issuer, clk clock.Clock) *Service {
	return &Service{
		storage: storage,
		issuer:  issuer,
		clock:   clk,
	}
}

// Register creates a new account. Duplicate detection is delegated to the
// store's atomic create; there is no read-before-write here.
func (s *Service) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, model.ErrUserExists) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates an account and issues a bearer token. An unknown
// email and a wrong password produce the same error so the response does
// not reveal which factor failed.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, User: *user}, nil
}

// Verify validates a bearer token and returns its claims.
func (s *Service) Verify(token string) (*Claims, error) {
	return s.issuer.Verify(token)
}

// Logout acknowledges a client-side token discard. Tokens are stateless,
// so there is nothing to invalidate server-side.
func (s *Service) Logout() {}

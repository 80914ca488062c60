package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/psyguage/psyguage-server/internal/dependencies/clock"
	"github.com/psyguage/psyguage-server/internal/model"
)

// Token errors
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims are the validated contents of a session token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Issuer mints and verifies signed, time-bounded bearer tokens. The signing
// key is held for the process lifetime; tokens are self-contained and there
// is no server-side session state.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewIssuer creates a token issuer with the given signing secret and TTL.
func NewIssuer(secret []byte, ttl time.Duration, clk clock.Clock) *Issuer {
	return &Issuer{
		secret: secret,
		ttl:    ttl,
		clock:  clk,
	}
}

// Issue creates a signed token for the user, valid for the configured TTL.
func (i *Issuer) Issue(user *model.User) (string, error) {
	now := i.clock.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Email: user.Email,
		Name:  user.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify validates the signature and expiry of a token and returns its
// claims. Expiry is checked against the injected clock so boundary
// behavior is testable.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	return &claims, nil
}

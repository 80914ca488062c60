package response

import (
	"time"

	"github.com/psyguage/psyguage-server/internal/model"
	"github.com/psyguage/psyguage-server/internal/services/auth"
)

// User represents the non-secret profile fields in API responses
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserFromModel converts a model.User to a response User. The password
// hash is deliberately unrepresentable here.
func UserFromModel(u *model.User) User {
	return User{
		Name:  u.Name,
		Email: u.Email,
	}
}

// Message is a plain confirmation response
type Message struct {
	Message string `json:"message"`
}

// LoginResponse is the response for a successful login
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// LoginResponseFromSession creates a LoginResponse from a session
func LoginResponseFromSession(s *auth.Session) LoginResponse {
	return LoginResponse{
		Message: "Login successful",
		Token:   s.Token,
		User:    UserFromModel(&s.User),
	}
}

// TokenClaims are the decoded claims returned by the verify endpoint
type TokenClaims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// VerifyResponse wraps the decoded token claims
type VerifyResponse struct {
	User TokenClaims `json:"user"`
}

// VerifyResponseFromClaims creates a VerifyResponse from validated claims
func VerifyResponseFromClaims(c *auth.Claims) VerifyResponse {
	return VerifyResponse{
		User: TokenClaims{
			ID:        c.Subject,
			Email:     c.Email,
			Name:      c.Name,
			IssuedAt:  c.IssuedAt.Unix(),
			ExpiresAt: c.ExpiresAt.Unix(),
		},
	}
}

// Score represents a score record in API responses
type Score struct {
	ID                 string    `json:"id"`
	GameName           string    `json:"gameName"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Score              float64   `json:"score"`
	ResponseSymbolTime float64   `json:"responseSymbolTime"`
	CorrectSymbolCount bool      `json:"correctSymbolCount"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ScoreFromModel converts a model.Score to a response Score
func ScoreFromModel(s *model.Score) Score {
	return Score{
		ID:                 s.ID,
		GameName:           s.GameName,
		Name:               s.Name,
		Email:              s.Email,
		Score:              s.Score,
		ResponseSymbolTime: s.ResponseSymbolTime,
		CorrectSymbolCount: s.CorrectSymbolCount,
		CreatedAt:          s.CreatedAt,
	}
}

// ScoresFromModel converts a slice of score records
func ScoresFromModel(scores []*model.Score) []Score {
	result := make([]Score, len(scores))
	for i, s := range scores {
		result[i] = ScoreFromModel(s)
	}
	return result
}

// Feedback represents a feedback entry in API responses
type Feedback struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedbackFromModel converts a model.Feedback
func FeedbackFromModel(f *model.Feedback) Feedback {
	return Feedback{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	}
}

// FeedbackListFromModel converts a slice of feedback entries
func FeedbackListFromModel(feedback []*model.Feedback) []Feedback {
	result := make([]Feedback, len(feedback))
	for i, f := range feedback {
		result[i] = FeedbackFromModel(f)
	}
	return result
}

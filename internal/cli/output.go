package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case LoginResult:
		o.printLoginResult(v)
	case VerifyResult:
		o.printVerifyResult(v)
	case []Score:
		o.printScores(v)
	case Score:
		o.printScore(v)
	case []Feedback:
		o.printFeedback(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResult response type
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// TokenClaims response type
type TokenClaims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// VerifyResult response type
type VerifyResult struct {
	User TokenClaims `json:"user"`
}

// Score response type
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

// Feedback response type
type Feedback struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printLoginResult(r LoginResult) {
	fmt.Printf("Logged in as %s <%s>\n", r.User.Name, r.User.Email)
	fmt.Printf("Token: %s\n", r.Token)
}

func (o *Output) printVerifyResult(r VerifyResult) {
	fmt.Printf("Token valid for %s <%s>\n", r.User.Name, r.User.Email)
	fmt.Printf("Expires: %s\n", time.Unix(r.User.ExpiresAt, 0).Format(time.RFC3339))
}

func (o *Output) printScore(s Score) {
	fmt.Printf("%s  %s  score=%g  responseTime=%g\n", s.CreatedAt.Format(time.RFC3339), s.GameName, s.Score, s.ResponseSymbolTime)
}

func (o *Output) printScores(scores []Score) {
	for _, s := range scores {
		o.printScore(s)
	}
}

func (o *Output) printFeedback(feedback []Feedback) {
	for _, f := range feedback {
		fmt.Printf("%s  %s <%s>: %s\n", f.CreatedAt.Format(time.RFC3339), f.Name, f.Email, f.Message)
	}
}

func (o *Output) printHealthResult(r HealthResult) {
	fmt.Printf("Server status: %s\n", r.Status)
}

package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitScoreRequest is the request body for submitting a score.
// Score is a pointer so a missing field is distinguishable from zero.
type SubmitScoreRequest struct {
	GameName           string   `json:"gameName"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Score              *float64 `json:"score"`
	ResponseSymbolTime float64  `json:"responseSymbolTime"`
	CorrectSymbolCount bool     `json:"correctSymbolCount"`
}

// SubmitFeedbackRequest is the request body for submitting feedback
type SubmitFeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

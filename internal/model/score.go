package model

import "time"

// Score is a single immutable game result submitted for an account.
// Records are append-only; there is no update or delete.
type Score struct {
	ID                 string    `json:"id"`
	GameName           string    `json:"game_name"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Score              float64   `json:"score"`
	ResponseSymbolTime float64   `json:"response_symbol_time"`
	CorrectSymbolCount bool      `json:"correct_symbol_count"`
	CreatedAt          time.Time `json:"created_at"`
}

package model

import "time"

// User is a registered account. The password hash never leaves the
// storage/auth layers; API responses use the public fields only.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

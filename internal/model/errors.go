package model

import "errors"

// Domain errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrNoScores     = errors.New("no scores found")
)

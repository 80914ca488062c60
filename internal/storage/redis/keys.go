package redis

import "fmt"

// Key prefix for all persisted data
const keyPrefix = "psyguage"

// userKey returns the Redis key for a User, keyed by email. Email is the
// unique identity, so the key itself is the uniqueness constraint.
func userKey(email string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, email)
}

// scoresKey returns the Redis key for the LIST of an account's scores
func scoresKey(email string) string {
	return fmt.Sprintf("%s:scores:%s", keyPrefix, email)
}

// feedbackKey returns the Redis key for the LIST of feedback entries
func feedbackKey() string {
	return fmt.Sprintf("%s:feedback", keyPrefix)
}

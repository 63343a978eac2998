package domain

import "time"

// Identity is the verified content of a bearer token.
type Identity struct {
	AccountID   string
	Username    string
	DisplayName string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

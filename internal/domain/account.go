package domain

import "time"

// Account is an administrative principal permitted to manage contacts.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
}

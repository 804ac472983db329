package domain

import "time"

// User is the owner of every other entity. Only the id ever reaches the
// ledger operations; credentials stay inside the auth service.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

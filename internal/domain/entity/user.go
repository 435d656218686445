package entity

import "time"

// User represents a department user that issues and manages challans.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past the auth use case
	Department   string
	IsActive     bool
	CreatedAt    time.Time
}

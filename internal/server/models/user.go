package models

import "time"

// User is a stored user profile. Birthday is a YYYY-MM-DD string and Image a
// data URI; both are kept exactly as submitted.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	PhoneNumber  string
	Birthday     string
	Gender       string
	Image        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

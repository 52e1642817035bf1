package models

import "time"

// User is a single row of the users table. PasswordHash is a salted bcrypt
// digest and never leaves the process in API responses.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

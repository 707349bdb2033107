// Package model defines domain entities for the application.
package model

import "time"

// User represents an account that can own posts.
// PasswordHash holds the argon2id PHC string and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

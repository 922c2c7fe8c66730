// Package models holds the persisted entities of the todo service.
package models

import "time"

// User is an identity record. PasswordHash is never serialized to clients.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

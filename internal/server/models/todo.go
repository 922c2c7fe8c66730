package models

import "time"

// Todo is a resource owned by exactly one user. Description is nullable in
// the store and omitted from JSON when absent.
type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

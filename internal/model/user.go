package model

import "time"

// User holds the resolved delivery destinations for a recipient.
// The dispatch engine treats users as a read-only directory.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	FullName  string    `json:"full_name"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

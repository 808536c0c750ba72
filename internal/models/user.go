package models

import "time"

// User represents a registered caller. The id doubles as the session
// token value stored in the client cookie.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

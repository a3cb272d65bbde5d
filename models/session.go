package models

import "time"

// Roles recognized by the session registry.
const (
	RoleClient   = "client"
	RoleProvider = "provider"
)

// Session is the active authenticated identity. At most one session exists
// per store; a new login overwrites the previous session.
type Session struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"` // "client" or "provider"
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Credentials are the login inputs checked against a registry record.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

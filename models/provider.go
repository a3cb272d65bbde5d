package models

import "time"

// Provider is a registered service provider record. PasswordHash is a bcrypt
// hash; plaintext passwords are never stored.
type Provider struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Category     string    `json:"category"` // Catalog category the provider serves
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicProvider is the provider view exposed to clients.
type PublicProvider struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Category string `json:"category"`
}

func (p Provider) Public() PublicProvider {
	return PublicProvider{ID: p.ID, Name: p.Name, Email: p.Email, Category: p.Category}
}

// Client is a registered client record.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegistrationInput holds the fields for registering a client or provider.
type RegistrationInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Category string `json:"category,omitempty"` // Providers only
}

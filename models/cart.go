package models

import "time"

// CartItem is a single line in a client's cart. Lines are merged on the
// (ServiceID, ProviderID) pair; Quantity never drops below 1.
type CartItem struct {
	ID         string    `json:"id"`
	ServiceID  string    `json:"service_id"`
	ProviderID string    `json:"provider_id"`
	Quantity   int       `json:"quantity"`
	Selected   bool      `json:"selected"`
	Price      string    `json:"price"` // Decimal string as entered by the provider
	AddedAt    time.Time `json:"added_at"`
}

// Cart is the full cart snapshot returned by every mutating cart operation.
type Cart struct {
	ClientID  string     `json:"client_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItemInput holds the fields for adding a line to the cart.
type AddItemInput struct {
	ServiceID  string `json:"service_id"`
	ProviderID string `json:"provider_id"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"` // Defaults to 1 when <= 0
}

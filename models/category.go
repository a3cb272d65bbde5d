package models

// Category groups the services offered on the marketplace.
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	Services []Service `json:"services"`
}

// Service is a bookable service within a category.
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"` // Suggested price, decimal string
	Duration string `json:"duration,omitempty"`
}

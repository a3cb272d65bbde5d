package models

import "time"

// Invoice is the result of the payment handoff for a booking.
type Invoice struct {
	InvoiceID string    `json:"invoice_id"`
	BookingID string    `json:"booking_id"`
	ClientID  string    `json:"client_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"` // "online" or "cod"
	PaymentID string    `json:"payment_id,omitempty"`
	Status    string    `json:"status"` // "paid" or "due_on_delivery"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReminderPayload is carried by a queued service-date reminder task.
type ReminderPayload struct {
	BookingID   string `json:"booking_id"`
	ClientID    string `json:"client_id"`
	ProviderID  string `json:"provider_id"`
	ServiceType string `json:"service_type"`
	ServiceDate string `json:"service_date"`
	Contact     string `json:"contact"`
}

package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

func (s BookingStatus) String() string {
	return string(s)
}

// Payment methods accepted at booking time.
const (
	PaymentMethodOnline = "online"
	PaymentMethodCOD    = "cod"
)

// Booking represents a service booking record.
type Booking struct {
	ID            string        `json:"id"`                    // Unique booking identifier
	ProviderID    string        `json:"provider_id"`           // Provider who was booked
	ProviderName  string        `json:"provider_name"`         // Display name of the provider
	ClientID      string        `json:"client_id"`             // Client who made the booking
	ClientName    string        `json:"client_name"`           // Display name of the client
	ServiceType   string        `json:"service_type"`          // e.g., "Hand Embroidery"
	Description   string        `json:"description,omitempty"` // Optional notes from the client
	ServiceDate   string        `json:"service_date"`          // Date of service in "YYYY-MM-DD" format
	Contact       string        `json:"contact"`               // Client contact number
	PaymentMethod string        `json:"payment_method"`        // "online" or "cod"
	Amount        float64       `json:"amount"`                // Agreed total price
	Status        BookingStatus `json:"status"`
	BookingDate   time.Time     `json:"booking_date"` // Timestamp when the booking was created
}

// BookingInput holds the client-supplied fields for creating a booking.
type BookingInput struct {
	ProviderID    string  `json:"provider_id"`
	ProviderName  string  `json:"provider_name"`
	ServiceType   string  `json:"service_type"`
	Description   string  `json:"description,omitempty"`
	ServiceDate   string  `json:"service_date"` // "YYYY-MM-DD"
	Contact       string  `json:"contact"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
}

package booking

import (
	"context"
	"time"

	"craftly/models"
	"craftly/store"

	"go.uber.org/zap"
)

// BookingService defines the ledger owning all booking records and their
// per-client / per-provider projections.
type BookingService interface {
	CreateBooking(ctx context.Context, clientID, clientName string, input models.BookingInput) (*models.Booking, error)
	ListBookingsForClient(ctx context.Context, clientID string) ([]models.Booking, error)
	ListBookingsForProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	CurrentBooking(ctx context.Context, clientID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, newStatus models.BookingStatus) (*models.Booking, error)
}

// ReminderScheduler queues a service-date reminder for a new booking.
// Implemented by the asynq-backed scheduler in the tasks package.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultBookingService implements BookingService over a persistent store.
type DefaultBookingService struct {
	Store     store.Store
	Logger    *zap.Logger
	Reminders ReminderScheduler // optional; nil disables reminders
}

// Persisted keys. The global list is the source record; the others are
// projections that every mutation rewrites in the same transaction.
const (
	BookingsKey = "bookings"

	clientOrdersPrefix   = "clientOrders:"
	providerOrdersPrefix = "providerOrders:"
	currentBookingPrefix = "currentBooking:"
)

func ClientOrdersKey(clientID string) string {
	return clientOrdersPrefix + clientID
}

func ProviderOrdersKey(providerID string) string {
	return providerOrdersPrefix + providerID
}

func CurrentBookingKey(clientID string) string {
	return currentBookingPrefix + clientID
}

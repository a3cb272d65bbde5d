package booking

import (
	"context"
	"time"

	"craftly/models"
	"craftly/store"
	"craftly/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// validateInput checks the client-supplied fields and reports the first
// failing one.
func validateInput(input models.BookingInput, now time.Time) error {
	if input.ServiceType == "" {
		return &ValidationError{Field: "service_type", Message: "service type is required"}
	}
	if input.ServiceDate == "" {
		return &ValidationError{Field: "service_date", Message: "service date is required"}
	}
	if _, err := time.Parse(dateLayout, input.ServiceDate); err != nil {
		return &ValidationError{Field: "service_date", Message: "service date must be in YYYY-MM-DD format"}
	}
	// Lexicographic compare is date order for YYYY-MM-DD.
	if input.ServiceDate < now.Format(dateLayout) {
		return &ValidationError{Field: "service_date", Message: "service date must be today or later"}
	}
	if input.Contact == "" {
		return &ValidationError{Field: "contact", Message: "contact is required"}
	}
	if input.PaymentMethod != models.PaymentMethodOnline && input.PaymentMethod != models.PaymentMethodCOD {
		return &ValidationError{Field: "payment_method", Message: "payment method must be online or cod"}
	}
	return nil
}

// CreateBooking validates the input, assigns an id and writes the booking to
// the global list, both projections and the current-booking slot in a single
// transaction. No partial fan-out is ever visible.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, clientID, clientName string, input models.BookingInput) (*models.Booking, error) {
	now := time.Now()
	if err := validateInput(input, now); err != nil {
		return nil, err
	}

	bk := models.Booking{
		ID:            utils.NewRecordID(),
		ProviderID:    input.ProviderID,
		ProviderName:  input.ProviderName,
		ClientID:      clientID,
		ClientName:    clientName,
		ServiceType:   input.ServiceType,
		Description:   input.Description,
		ServiceDate:   input.ServiceDate,
		Contact:       input.Contact,
		PaymentMethod: input.PaymentMethod,
		Amount:        input.Amount,
		Status:        models.BookingStatusPending,
		BookingDate:   now,
	}

	err := svc.Store.Update(ctx, func(tx store.Tx) error {
		all, err := store.TxGet(tx, BookingsKey, []models.Booking{})
		if err != nil {
			return err
		}
		mine, err := store.TxGet(tx, ClientOrdersKey(clientID), []models.Booking{})
		if err != nil {
			return err
		}
		incoming, err := store.TxGet(tx, ProviderOrdersKey(bk.ProviderID), []models.Booking{})
		if err != nil {
			return err
		}

		// Prepend keeps every list most-recent-first.
		if err := store.TxSet(tx, BookingsKey, append([]models.Booking{bk}, all...)); err != nil {
			return err
		}
		if err := store.TxSet(tx, ClientOrdersKey(clientID), append([]models.Booking{bk}, mine...)); err != nil {
			return err
		}
		if err := store.TxSet(tx, ProviderOrdersKey(bk.ProviderID), append([]models.Booking{bk}, incoming...)); err != nil {
			return err
		}
		return store.TxSet(tx, CurrentBookingKey(clientID), bk)
	})
	if err != nil {
		return nil, err
	}

	svc.scheduleReminder(bk)

	svc.Logger.Info("booking created",
		zap.String("bookingID", bk.ID),
		zap.String("clientID", clientID),
		zap.String("providerID", bk.ProviderID),
		zap.String("serviceType", bk.ServiceType),
	)
	return &bk, nil
}

// scheduleReminder queues a reminder for the morning of the service date.
// Best effort: a queue failure never fails the booking.
func (svc *DefaultBookingService) scheduleReminder(bk models.Booking) {
	if svc.Reminders == nil {
		return
	}
	day, err := time.ParseInLocation(dateLayout, bk.ServiceDate, time.Local)
	if err != nil {
		return
	}
	fireAt := day.Add(8 * time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingID:   bk.ID,
		ClientID:    bk.ClientID,
		ProviderID:  bk.ProviderID,
		ServiceType: bk.ServiceType,
		ServiceDate: bk.ServiceDate,
		Contact:     bk.Contact,
	}
	if err := svc.Reminders.ScheduleReminder(payload, fireAt); err != nil {
		svc.Logger.Warn("failed to schedule booking reminder",
			zap.String("bookingID", bk.ID), zap.Error(err))
	}
}

// ListBookingsForClient returns the client's bookings, most recent first.
func (svc *DefaultBookingService) ListBookingsForClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	return store.Get(ctx, svc.Store, ClientOrdersKey(clientID), []models.Booking{})
}

// ListBookingsForProvider returns the provider's bookings, most recent first.
func (svc *DefaultBookingService) ListBookingsForProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return store.Get(ctx, svc.Store, ProviderOrdersKey(providerID), []models.Booking{})
}

// CurrentBooking returns the booking waiting in the payment-handoff slot, or
// ErrNoCurrentBooking.
func (svc *DefaultBookingService) CurrentBooking(ctx context.Context, clientID string) (*models.Booking, error) {
	bk, err := store.Get(ctx, svc.Store, CurrentBookingKey(clientID), models.Booking{})
	if err != nil {
		return nil, err
	}
	if bk.ID == "" {
		return nil, ErrNoCurrentBooking
	}
	return &bk, nil
}

// UpdateStatus applies a state-machine transition to the booking and rewrites
// every stored view of it in one transaction.
func (svc *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID string, newStatus models.BookingStatus) (*models.Booking, error) {
	if !isKnownStatus(newStatus) {
		return nil, &ValidationError{Field: "status", Message: "unknown booking status"}
	}

	var updated models.Booking
	err := svc.Store.Update(ctx, func(tx store.Tx) error {
		all, err := store.TxGet(tx, BookingsKey, []models.Booking{})
		if err != nil {
			return err
		}

		idx := -1
		for i, bk := range all {
			if bk.ID == bookingID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return ErrBookingNotFound
		}
		if !canTransition(all[idx].Status, newStatus) {
			return &InvalidTransitionError{From: all[idx].Status, To: newStatus}
		}

		all[idx].Status = newStatus
		updated = all[idx]
		if err := store.TxSet(tx, BookingsKey, all); err != nil {
			return err
		}

		if err := replaceInProjection(tx, ClientOrdersKey(updated.ClientID), updated); err != nil {
			return err
		}
		if err := replaceInProjection(tx, ProviderOrdersKey(updated.ProviderID), updated); err != nil {
			return err
		}

		// The current-booking slot may still hold this booking.
		current, err := store.TxGet(tx, CurrentBookingKey(updated.ClientID), models.Booking{})
		if err != nil {
			return err
		}
		if current.ID == updated.ID {
			return store.TxSet(tx, CurrentBookingKey(updated.ClientID), updated)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	svc.Logger.Info("booking status updated",
		zap.String("bookingID", updated.ID),
		zap.String("status", updated.Status.String()),
	)
	return &updated, nil
}

func replaceInProjection(tx store.Tx, key string, bk models.Booking) error {
	list, err := store.TxGet(tx, key, []models.Booking{})
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == bk.ID {
			list[i] = bk
			return store.TxSet(tx, key, list)
		}
	}
	return nil
}

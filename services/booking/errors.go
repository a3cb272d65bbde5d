package booking

import (
	"errors"
	"fmt"

	"craftly/models"
)

// ErrBookingNotFound is returned when no stored booking has the given id.
var ErrBookingNotFound = errors.New("booking not found")

// ErrNoCurrentBooking is returned by the payment handoff when there is no
// booking waiting in the current-booking slot.
var ErrNoCurrentBooking = errors.New("no current booking awaiting payment")

// ValidationError reports the first input field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InvalidTransitionError reports a booking status change the state machine
// does not allow. The booking is left unchanged.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}

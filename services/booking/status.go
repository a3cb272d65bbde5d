package booking

import "craftly/models"

// allowedTransitions is the booking state machine:
// pending -> confirmed -> completed; pending/confirmed -> cancelled.
// completed and cancelled are terminal.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

func canTransition(from, to models.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func isKnownStatus(s models.BookingStatus) bool {
	switch s {
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusCancelled, models.BookingStatusCompleted:
		return true
	}
	return false
}

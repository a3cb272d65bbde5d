package handlers

import (
	"errors"
	"net/http"

	"craftly/services/booking"
	"craftly/services/session"
	"craftly/store"
	"craftly/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to an HTTP status and a JSON body.
func respondError(c *gin.Context, err error) {
	var bookingValidation *booking.ValidationError
	var sessionValidation *session.ValidationError
	var transition *booking.InvalidTransitionError
	var auth *session.AuthenticationError

	switch {
	case errors.As(err, &bookingValidation):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", bookingValidation.Error())
	case errors.As(err, &sessionValidation):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", sessionValidation.Error())
	case errors.As(err, &auth):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
	case errors.As(err, &transition):
		utils.JSONError(c, http.StatusConflict, "Invalid status transition", transition.Error())
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	case errors.Is(err, booking.ErrNoCurrentBooking):
		utils.JSONError(c, http.StatusNotFound, "No booking awaiting payment", "")
	case store.IsPersistenceError(err):
		utils.JSONError(c, http.StatusInternalServerError, "Storage failure", "The operation was rejected; please retry.")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

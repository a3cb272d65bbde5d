package handlers

import (
	"net/http"

	"craftly/middleware"
	"craftly/models"
	"craftly/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking ledger and the payment handoff.
type BookingHandler struct {
	Service  booking.BookingService
	Payments booking.PaymentHandler
	Logger   *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, payments booking.PaymentHandler, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Payments: payments, Logger: logger}
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	clientID := c.GetString(middleware.CtxSubjectID)
	clientName := c.GetString(middleware.CtxName)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := h.Service.CreateBooking(c.Request.Context(), clientID, clientName, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// MyBookingsHandler lists the signed-in client's bookings, most recent first.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	clientID := c.GetString(middleware.CtxSubjectID)

	bookings, err := h.Service.ListBookingsForClient(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ProviderBookingsHandler lists the signed-in provider's incoming bookings.
func (h *BookingHandler) ProviderBookingsHandler(c *gin.Context) {
	providerID := c.GetString(middleware.CtxSubjectID)

	bookings, err := h.Service.ListBookingsForProvider(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")

	var input struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := h.Service.UpdateStatus(c.Request.Context(), bookingID, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CurrentBookingHandler returns the booking waiting in the payment slot.
func (h *BookingHandler) CurrentBookingHandler(c *gin.Context) {
	clientID := c.GetString(middleware.CtxSubjectID)

	bk, err := h.Service.CurrentBooking(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// PayCurrentBookingHandler settles the current booking and returns the invoice.
func (h *BookingHandler) PayCurrentBookingHandler(c *gin.Context) {
	clientID := c.GetString(middleware.CtxSubjectID)

	inv, err := h.Payments.ProcessCurrentBooking(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

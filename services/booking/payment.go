package booking

import (
	"context"
	"fmt"
	"time"

	"craftly/models"
	"craftly/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentHandler settles the booking waiting in the current-booking slot.
type PaymentHandler interface {
	ProcessCurrentBooking(ctx context.Context, clientID string) (*models.Invoice, error)
}

// HandoffPaymentHandler implements PaymentHandler. Payment is simulated per
// method: "online" is marked paid with a generated payment reference, "cod"
// stays due until delivery. Either way the booking is confirmed through the
// ledger and the slot is cleared.
type HandoffPaymentHandler struct {
	logger *zap.Logger
	ledger BookingService
	st     store.Store
}

func NewPaymentHandler(logger *zap.Logger, ledger BookingService, st store.Store) *HandoffPaymentHandler {
	return &HandoffPaymentHandler{
		logger: logger,
		ledger: ledger,
		st:     st,
	}
}

func (h *HandoffPaymentHandler) ProcessCurrentBooking(ctx context.Context, clientID string) (*models.Invoice, error) {
	bk, err := h.ledger.CurrentBooking(ctx, clientID)
	if err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		BookingID: bk.ID,
		ClientID:  clientID,
		Amount:    bk.Amount,
		Method:    bk.PaymentMethod,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch bk.PaymentMethod {
	case models.PaymentMethodOnline:
		inv.PaymentID = "pay_" + uuid.New().String()
		inv.Status = "paid"
	case models.PaymentMethodCOD:
		inv.Status = "due_on_delivery"
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", bk.PaymentMethod)
	}

	if _, err := h.ledger.UpdateStatus(ctx, bk.ID, models.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	if err := h.st.Remove(ctx, CurrentBookingKey(clientID)); err != nil {
		h.logger.Warn("failed to clear current booking slot",
			zap.String("bookingID", bk.ID), zap.Error(err))
	}

	inv.UpdatedAt = time.Now()
	h.logger.Info("payment handoff completed",
		zap.String("invoiceID", inv.InvoiceID),
		zap.String("bookingID", inv.BookingID),
		zap.String("method", inv.Method),
		zap.String("status", inv.Status),
	)
	return inv, nil
}

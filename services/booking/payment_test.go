package booking

import (
	"context"
	"testing"

	"craftly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcessCurrentBooking_Online(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService()
	payments := NewPaymentHandler(zap.NewNop(), svc, st)

	bk, err := svc.CreateBooking(ctx, "c1", "Asha", validInput())
	require.NoError(t, err)

	inv, err := payments.ProcessCurrentBooking(ctx, "c1")
	require.NoError(t, err)

	assert.Equal(t, bk.ID, inv.BookingID)
	assert.Equal(t, "paid", inv.Status)
	assert.NotEmpty(t, inv.PaymentID)
	assert.Equal(t, bk.Amount, inv.Amount)

	// The booking is confirmed everywhere and the slot is cleared.
	mine, err := svc.ListBookingsForClient(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, mine[0].Status)

	_, err = svc.CurrentBooking(ctx, "c1")
	assert.ErrorIs(t, err, ErrNoCurrentBooking)
}

func TestProcessCurrentBooking_CashOnDelivery(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService()
	payments := NewPaymentHandler(zap.NewNop(), svc, st)

	in := validInput()
	in.PaymentMethod = models.PaymentMethodCOD
	_, err := svc.CreateBooking(ctx, "c1", "Asha", in)
	require.NoError(t, err)

	inv, err := payments.ProcessCurrentBooking(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "due_on_delivery", inv.Status)
	assert.Empty(t, inv.PaymentID)
}

func TestProcessCurrentBooking_EmptySlot(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService()
	payments := NewPaymentHandler(zap.NewNop(), svc, st)

	_, err := payments.ProcessCurrentBooking(ctx, "c1")
	assert.ErrorIs(t, err, ErrNoCurrentBooking)
}

func TestProcessCurrentBooking_AlreadyCancelled(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService()
	payments := NewPaymentHandler(zap.NewNop(), svc, st)

	bk, err := svc.CreateBooking(ctx, "c1", "Asha", validInput())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, bk.ID, models.BookingStatusCancelled)
	require.NoError(t, err)

	// The cancelled booking still sits in the slot, but it cannot be
	// confirmed, so payment is rejected with no state change.
	_, err = payments.ProcessCurrentBooking(ctx, "c1")
	var terr *InvalidTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, models.BookingStatusCancelled, terr.From)
}

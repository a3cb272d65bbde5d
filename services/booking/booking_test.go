package booking

import (
	"context"
	"testing"
	"time"

	"craftly/models"
	"craftly/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() (*DefaultBookingService, *store.MemoryStore) {
	st := store.NewMemoryStore()
	svc := &DefaultBookingService{Store: st, Logger: zap.NewNop()}
	return svc, st
}

func validInput() models.BookingInput {
	return models.BookingInput{
		ProviderID:    "p1",
		ProviderName:  "Meera Stitchworks",
		ServiceType:   "Hand Embroidery",
		ServiceDate:   "2099-01-01",
		Contact:       "9999999999",
		PaymentMethod: models.PaymentMethodOnline,
		Amount:        500,
	}
}

func TestCreateBooking_Valid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	bk, err := svc.CreateBooking(ctx, "c1", "Asha", validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, bk.ID)
	assert.Equal(t, models.BookingStatusPending, bk.Status)
	assert.Equal(t, "c1", bk.ClientID)
	assert.Equal(t, "Asha", bk.ClientName)
	assert.WithinDuration(t, time.Now(), bk.BookingDate, time.Minute)

	// The booking is immediately visible in both projections.
	mine, err := svc.ListBookingsForClient(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, bk.ID, mine[0].ID)

	incoming, err := svc.ListBookingsForProvider(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, bk.ID, incoming[0].ID)

	// And parked in the payment-handoff slot.
	current, err := svc.CurrentBooking(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, bk.ID, current.ID)
}

func TestCreateBooking_ValidationReportsFirstFailingField(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.BookingInput)
		field  string
	}{
		{"empty service type", func(in *models.BookingInput) { in.ServiceType = "" }, "service_type"},
		{"missing date", func(in *models.BookingInput) { in.ServiceDate = "" }, "service_date"},
		{"malformed date", func(in *models.BookingInput) { in.ServiceDate = "01/01/2099" }, "service_date"},
		{"past date", func(in *models.BookingInput) { in.ServiceDate = "2020-01-01" }, "service_date"},
		{"empty contact", func(in *models.BookingInput) { in.Contact = "" }, "contact"},
		{"bad payment method", func(in *models.BookingInput) { in.PaymentMethod = "cheque" }, "payment_method"},
		{"service type checked before contact", func(in *models.BookingInput) {
			in.ServiceType = ""
			in.Contact = ""
		}, "service_type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService()
			in := validInput()
			tc.mutate(&in)

			_, err := svc.CreateBooking(ctx, "c1", "Asha", in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)

			// Nothing was persisted.
			mine, err := svc.ListBookingsForClient(ctx, "c1")
			require.NoError(t, err)
			assert.Empty(t, mine)
			_, err = svc.CurrentBooking(ctx, "c1")
			assert.ErrorIs(t, err, ErrNoCurrentBooking)
		})
	}
}

func TestCreateBooking_ServiceDateTodayIsAccepted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	in := validInput()
	in.ServiceDate = time.Now().Format("2006-01-02")

	bk, err := svc.CreateBooking(ctx, "c1", "Asha", in)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, bk.Status)
}

func TestCreateBooking_IDsAreUnique(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		bk, err := svc.CreateBooking(ctx, "c1", "Asha", validInput())
		require.NoError(t, err)
		require.False(t, seen[bk.ID], "duplicate booking id %s", bk.ID)
		seen[bk.ID] = true
	}
}

func TestListBookings_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	first, err := svc.CreateBooking(ctx, "c1", "Asha", validInput())
	require.NoError(t, err)
	second, err := svc.CreateBooking(ctx, "c1", "Asha", validInput())
	require.NoError(t, err)

	mine, err := svc.ListBookingsForClient(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)
}

func TestUpdateStatus_AllowedTransitions(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		from models.BookingStatus
		to   models.BookingStatus
		ok   bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusCompleted, models.BookingStatusConfirmed, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
		{models.BookingStatusCancelled, models.BookingStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			svc, st := newTestService()
			bk, err := svc.CreateBooking(ctx, "c1", "Asha", validInput())
			require.NoError(t, err)

			// Walk the booking to the starting status via the store so the
			// transition under test starts exactly at tc.from.
			forceStatus(t, st, bk.ID, tc.from)

			updated, err := svc.UpdateStatus(ctx, bk.ID, tc.to)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, updated.Status)
				return
			}

			var terr *InvalidTransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tc.from, terr.From)
			assert.Equal(t, tc.to, terr.To)

			// State is unchanged after a rejected transition.
			mine, err := svc.ListBookingsForClient(ctx, "c1")
			require.NoError(t, err)
			require.Len(t, mine, 1)
			assert.Equal(t, tc.from, mine[0].Status)
		})
	}
}

// forceStatus rewrites the stored status in every view, bypassing the state
// machine, so tests can start from an arbitrary status.
func forceStatus(t *testing.T, st store.Store, bookingID string, status models.BookingStatus) {
	t.Helper()
	ctx := context.Background()
	err := st.Update(ctx, func(tx store.Tx) error {
		for _, key := range []string{BookingsKey, ClientOrdersKey("c1"), ProviderOrdersKey("p1")} {
			list, err := store.TxGet(tx, key, []models.Booking{})
			if err != nil {
				return err
			}
			for i := range list {
				if list[i].ID == bookingID {
					list[i].Status = status
				}
			}
			if err := store.TxSet(tx, key, list); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateStatus_FanOutAcrossAllViews(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	bk, err := svc.CreateBooking(ctx, "c1", "Asha", validInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, bk.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)

	mine, err := svc.ListBookingsForClient(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, mine[0].Status)

	incoming, err := svc.ListBookingsForProvider(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, incoming[0].Status)

	current, err := svc.CurrentBooking(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, current.Status)
}

func TestUpdateStatus_UnknownBooking(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(ctx, "missing", models.BookingStatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(ctx, "whatever", models.BookingStatus("shipped"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

// failingStore rejects every transaction, simulating a broken medium.
type failingStore struct {
	*store.MemoryStore
}

func (f *failingStore) Update(context.Context, func(tx store.Tx) error) error {
	return &store.PersistenceError{Op: "commit", Err: assert.AnError}
}

func TestCreateBooking_PersistenceFailureLeavesNoPartialWrite(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	svc := &DefaultBookingService{Store: &failingStore{mem}, Logger: zap.NewNop()}

	_, err := svc.CreateBooking(ctx, "c1", "Asha", validInput())
	require.True(t, store.IsPersistenceError(err))

	mine, err := svc.ListBookingsForClient(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, mine)
	_, err = svc.CurrentBooking(ctx, "c1")
	assert.ErrorIs(t, err, ErrNoCurrentBooking)
}

// recordingScheduler captures reminder requests.
type recordingScheduler struct {
	payloads []models.ReminderPayload
	fireAts  []time.Time
}

func (r *recordingScheduler) ScheduleReminder(p models.ReminderPayload, at time.Time) error {
	r.payloads = append(r.payloads, p)
	r.fireAts = append(r.fireAts, at)
	return nil
}

func TestCreateBooking_SchedulesReminder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	rec := &recordingScheduler{}
	svc.Reminders = rec

	bk, err := svc.CreateBooking(ctx, "c1", "Asha", validInput())
	require.NoError(t, err)

	require.Len(t, rec.payloads, 1)
	assert.Equal(t, bk.ID, rec.payloads[0].BookingID)
	assert.Equal(t, "2099-01-01", rec.payloads[0].ServiceDate)
	assert.True(t, rec.fireAts[0].After(time.Now()))
}

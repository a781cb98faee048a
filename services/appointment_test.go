package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareDesk/cache"
	"CareDesk/models"
	"CareDesk/notifier"
	"CareDesk/store"
)

func newTestAppointmentService(rs *fakeStore, fc *fakeCache, fn *fakeNotifier) *AppointmentService {
	svc := NewAppointmentService(rs, fc, fn)
	svc.now = sequentialClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	svc.newID = sequentialIDs("appt-")
	return svc
}

func validBooking() CreateAppointmentInput {
	return CreateAppointmentInput{
		PatientID:        "patient-1",
		PrimaryPhysician: "John Green",
		Schedule:         time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		Reason:           "Annual check-up",
	}
}

func TestCreateAssignsServerFields(t *testing.T) {
	rs := newFakeStore()
	svc := newTestAppointmentService(rs, newFakeCache(), &fakeNotifier{})

	first, err := svc.Create(context.Background(), validBooking())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, first.Status)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := svc.Create(context.Background(), validBooking())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, second.CreatedAt.After(first.CreatedAt), "createdAt must be monotone across calls")

	_, persisted := rs.appointments[first.ID]
	assert.True(t, persisted)
}

func TestCreateRejectsUnknownPhysician(t *testing.T) {
	rs := newFakeStore()
	svc := newTestAppointmentService(rs, newFakeCache(), &fakeNotifier{})

	in := validBooking()
	in.PrimaryPhysician = "Gregory House"
	_, err := svc.Create(context.Background(), in)

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "unknown-physician", validation.Guard)
	assert.Empty(t, rs.appointments, "validation failures must not reach the store")
}

func TestCreateRejectsMissingReason(t *testing.T) {
	svc := newTestAppointmentService(newFakeStore(), newFakeCache(), &fakeNotifier{})

	in := validBooking()
	in.Reason = "  "
	_, err := svc.Create(context.Background(), in)

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "reason-required", validation.Guard)
}

func TestCreateWrapsStoreFailure(t *testing.T) {
	rs := newFakeStore()
	rs.createErr = context.DeadlineExceeded
	svc := newTestAppointmentService(rs, newFakeCache(), &fakeNotifier{})

	_, err := svc.Create(context.Background(), validBooking())

	var persistence *PersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.Equal(t, "create appointment", persistence.Op)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	fc := newFakeCache()
	svc := newTestAppointmentService(newFakeStore(), fc, &fakeNotifier{})

	created, err := svc.Create(context.Background(), validBooking())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Same answer when the cache entry is gone and the store serves the read.
	require.NoError(t, fc.Delete(context.Background(), cache.AppointmentKey+created.ID))
	got, err = svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetMissingAppointment(t *testing.T) {
	svc := newTestAppointmentService(newFakeStore(), newFakeCache(), &fakeNotifier{})

	_, err := svc.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestScheduleTransitionNotifiesPatient(t *testing.T) {
	rs := newFakeStore()
	fn := &fakeNotifier{}
	svc := newTestAppointmentService(rs, newFakeCache(), fn)

	created, err := svc.Create(context.Background(), validBooking())
	require.NoError(t, err)

	when := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), created.ID, created.PatientID,
		models.AppointmentPatch{Schedule: when}, models.TransitionSchedule)
	require.NoError(t, err)

	assert.Equal(t, models.StatusScheduled, updated.Status)
	assert.Equal(t, when, updated.Schedule)

	require.Len(t, fn.sends, 1)
	assert.Equal(t, created.PatientID, fn.sends[0].recipient)
	assert.Contains(t, fn.sends[0].message, "John Green")
	assert.Contains(t, fn.sends[0].message, FormatSchedule(when))
}

func TestCancelWithoutReasonIsRejected(t *testing.T) {
	rs := newFakeStore()
	fn := &fakeNotifier{}
	svc := newTestAppointmentService(rs, newFakeCache(), fn)

	created, err := svc.Create(context.Background(), validBooking())
	require.NoError(t, err)

	for _, reason := range []string{"", "x", " a "} {
		_, err := svc.Update(context.Background(), created.ID, created.PatientID,
			models.AppointmentPatch{CancellationReason: reason}, models.TransitionCancel)

		var validation *models.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "cancellation-reason-required", validation.Guard)
	}

	assert.Equal(t, models.StatusPending, rs.appointments[created.ID].Status, "stored record must be untouched")
	assert.Empty(t, fn.sends)
}

func TestCancelledAppointmentIsTerminal(t *testing.T) {
	rs := newFakeStore()
	svc := newTestAppointmentService(rs, newFakeCache(), &fakeNotifier{})

	created, err := svc.Create(context.Background(), validBooking())
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), created.ID, created.PatientID,
		models.AppointmentPatch{CancellationReason: "patient request"}, models.TransitionCancel)
	require.NoError(t, err)

	for _, transition := range []models.TransitionType{models.TransitionSchedule, models.TransitionCancel} {
		_, err := svc.Update(context.Background(), created.ID, created.PatientID, models.AppointmentPatch{
			Schedule:           time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
			CancellationReason: "second thoughts",
		}, transition)

		var validation *models.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "terminal-status", validation.Guard)
	}
	assert.Equal(t, models.StatusCancelled, rs.appointments[created.ID].Status)
}

func TestDeliveryFailureDoesNotFailUpdate(t *testing.T) {
	rs := newFakeStore()
	fn := &fakeNotifier{err: &notifier.DeliveryError{RecipientID: "patient-1", Err: context.DeadlineExceeded}}
	svc := newTestAppointmentService(rs, newFakeCache(), fn)

	created, err := svc.Create(context.Background(), validBooking())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, created.PatientID,
		models.AppointmentPatch{CancellationReason: "clinic closed"}, models.TransitionCancel)

	require.NoError(t, err, "a delivery failure must not mask the durable update")
	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Equal(t, "clinic closed", updated.CancellationReason)
	assert.Equal(t, models.StatusCancelled, rs.appointments[created.ID].Status)
}

func TestUpdateMissingAppointment(t *testing.T) {
	svc := newTestAppointmentService(newFakeStore(), newFakeCache(), &fakeNotifier{})

	_, err := svc.Update(context.Background(), "no-such-id", "patient-1",
		models.AppointmentPatch{Schedule: time.Now()}, models.TransitionSchedule)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListRecentCountsAndOrder(t *testing.T) {
	rs := newFakeStore()
	svc := newTestAppointmentService(rs, newFakeCache(), &fakeNotifier{})

	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		created, err := svc.Create(context.Background(), validBooking())
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	_, err := svc.Update(context.Background(), ids[2], "patient-1",
		models.AppointmentPatch{Schedule: time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)}, models.TransitionSchedule)
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), ids[3], "patient-1",
		models.AppointmentPatch{CancellationReason: "double booked"}, models.TransitionCancel)
	require.NoError(t, err)

	summary, err := svc.ListRecent(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, int64(4), summary.TotalCount)
	assert.Equal(t, int64(2), summary.PendingCount)
	assert.Equal(t, int64(1), summary.ScheduledCount)
	assert.Equal(t, int64(1), summary.CancelledCount)
	assert.Equal(t, summary.TotalCount, summary.PendingCount+summary.ScheduledCount+summary.CancelledCount)

	require.Len(t, summary.Documents, 4)
	for i := 1; i < len(summary.Documents); i++ {
		assert.False(t, summary.Documents[i].CreatedAt.After(summary.Documents[i-1].CreatedAt),
			"documents must be ordered newest-first")
	}
}

func TestListRecentCacheInvalidatedByUpdate(t *testing.T) {
	rs := newFakeStore()
	fc := newFakeCache()
	svc := newTestAppointmentService(rs, fc, &fakeNotifier{})

	created, err := svc.Create(context.Background(), validBooking())
	require.NoError(t, err)

	before, err := svc.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), before.PendingCount)

	_, err = svc.Update(context.Background(), created.ID, created.PatientID,
		models.AppointmentPatch{Schedule: time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)}, models.TransitionSchedule)
	require.NoError(t, err)

	after, err := svc.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), after.PendingCount)
	assert.Equal(t, int64(1), after.ScheduledCount)
}

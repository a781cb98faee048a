package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"CareDesk/cache"
	"CareDesk/models"
	"CareDesk/notifier"
	"CareDesk/store"
)

const defaultListingLimit = 50

// AppointmentService owns the appointment lifecycle: creation, retrieval,
// guarded status transitions with best-effort patient notification, and the
// dashboard listing. All collaborators are injected; the service holds no
// state of its own beyond them.
type AppointmentService struct {
	store    store.RecordStore
	cache    cache.Cache
	notifier notifier.Notifier
	now      func() time.Time
	newID    func() string
	pageSize int64
}

func NewAppointmentService(rs store.RecordStore, c cache.Cache, n notifier.Notifier) *AppointmentService {
	return &AppointmentService{
		store:    rs,
		cache:    c,
		notifier: n,
		now:      time.Now,
		newID:    uuid.NewString,
		pageSize: defaultListingLimit,
	}
}

type CreateAppointmentInput struct {
	PatientID        string
	PrimaryPhysician string
	Schedule         time.Time
	Reason           string
	Note             string
}

/*
* Validate the booking input against the roster and required fields
* Assign id, createdAt and the pending status, then persist
* Invalidate the dashboard listing so the admin view picks the record up
 */
func (s *AppointmentService) Create(ctx context.Context, in CreateAppointmentInput) (models.Appointment, error) {
	if strings.TrimSpace(in.PatientID) == "" {
		return models.Appointment{}, &models.ValidationError{Guard: "patient-required", Reason: "a booking needs a patient id"}
	}
	if !models.KnownPhysician(in.PrimaryPhysician) {
		return models.Appointment{}, &models.ValidationError{Guard: "unknown-physician", Reason: fmt.Sprintf("%q is not on the physician roster", in.PrimaryPhysician)}
	}
	if in.Schedule.IsZero() {
		return models.Appointment{}, &models.ValidationError{Guard: "schedule-required", Reason: "a booking needs a proposed schedule"}
	}
	if strings.TrimSpace(in.Reason) == "" {
		return models.Appointment{}, &models.ValidationError{Guard: "reason-required", Reason: "a booking needs a visit reason"}
	}

	appointment := models.Appointment{
		ID:               s.newID(),
		PatientID:        in.PatientID,
		PrimaryPhysician: in.PrimaryPhysician,
		Schedule:         in.Schedule,
		Status:           models.StatusPending,
		Reason:           strings.TrimSpace(in.Reason),
		Note:             strings.TrimSpace(in.Note),
		CreatedAt:        s.now(),
	}
	if err := s.store.CreateDocument(ctx, store.AppointmentCollection, appointment.ID, appointment); err != nil {
		return models.Appointment{}, &PersistenceError{Op: "create appointment", Err: err}
	}

	if err := s.cache.Set(ctx, cache.AppointmentKey+appointment.ID, appointment); err != nil {
		log.Println("Error while caching new appointment:", err)
	}
	s.invalidateListing(ctx)
	return appointment, nil
}

/*
* Pure lookup, cache first then store
* No side effects beyond refreshing the cache entry
 */
func (s *AppointmentService) Get(ctx context.Context, id string) (models.Appointment, error) {
	key := cache.AppointmentKey + id

	var cached models.Appointment
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Println("Error reading appointment from cache:", err)
	}
	if hit {
		return cached, nil
	}

	var appointment models.Appointment
	if err := s.store.GetDocument(ctx, store.AppointmentCollection, id, &appointment); err != nil {
		if err == store.ErrNotFound {
			return models.Appointment{}, store.ErrNotFound
		}
		return models.Appointment{}, &PersistenceError{Op: "get appointment", Err: err}
	}
	if err := s.cache.Set(ctx, key, appointment); err != nil {
		log.Println("Error while caching appointment:", err)
	}
	return appointment, nil
}

/*
* Load the current record and validate the patch against the state machine
* Persist the patch; the store is never touched on a guard failure
* Notify the patient best-effort: a delivery failure is logged, never
* surfaced, because the update is durable once the store acknowledged it
* Drop the cached record and dashboard listing, return the updated record
 */
func (s *AppointmentService) Update(ctx context.Context, id, patientID string, patch models.AppointmentPatch, transition models.TransitionType) (models.Appointment, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Appointment{}, err
	}

	target, err := models.ValidateTransition(transition, current.Status, patch)
	if err != nil {
		return models.Appointment{}, err
	}

	set := map[string]any{"status": target}
	switch transition {
	case models.TransitionSchedule:
		set["schedule"] = patch.Schedule
	case models.TransitionCancel:
		set["cancellationReason"] = strings.TrimSpace(patch.CancellationReason)
	}

	var updated models.Appointment
	if err := s.store.UpdateDocument(ctx, store.AppointmentCollection, id, set, &updated); err != nil {
		if err == store.ErrNotFound {
			return models.Appointment{}, store.ErrNotFound
		}
		return models.Appointment{}, &PersistenceError{Op: "update appointment", Err: err}
	}

	message := NotificationMessage(transition, updated.PrimaryPhysician, FormatSchedule(updated.Schedule), updated.CancellationReason)
	if err := s.notifier.Send(ctx, patientID, message); err != nil {
		log.Println("Appointment notification failed:", err)
	}

	if err := s.cache.Delete(ctx, cache.AppointmentKey+id); err != nil {
		log.Println("Error deleting appointment from cache:", err)
	}
	s.invalidateListing(ctx)
	return updated, nil
}

/*
* Fetch the most recent page, newest first by createdAt
* Counts come from a single pass over the page; the total from the store
* Results are cached until the next create or update
 */
func (s *AppointmentService) ListRecent(ctx context.Context, limit int64) (models.AppointmentSummary, error) {
	if limit <= 0 {
		limit = s.pageSize
	}

	// Only the default page is cached; invalidateListing clears exactly that.
	cacheable := limit == s.pageSize
	if cacheable {
		var cached models.AppointmentSummary
		hit, err := s.cache.Get(ctx, cache.RecentAppointmentsKey, &cached)
		if err != nil {
			log.Println("Error reading listing from cache:", err)
		}
		if hit {
			return cached, nil
		}
	}

	var docs []models.Appointment
	total, err := s.store.ListDocuments(ctx, store.AppointmentCollection, store.ListQuery{
		OrderBy: "createdAt",
		Limit:   limit,
	}, &docs)
	if err != nil {
		return models.AppointmentSummary{}, &PersistenceError{Op: "list appointments", Err: err}
	}

	summary := models.SummarizeAppointments(total, docs)
	if cacheable {
		if err := s.cache.Set(ctx, cache.RecentAppointmentsKey, summary); err != nil {
			log.Println("Error while caching listing:", err)
		}
	}
	return summary, nil
}

// invalidateListing is the cache-invalidation signal issued after every
// create and update so the admin view reflects the new state.
func (s *AppointmentService) invalidateListing(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.RecentAppointmentsKey); err != nil {
		log.Println("Error invalidating listing cache:", err)
	}
}

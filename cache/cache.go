package cache

import "context"

// Cache key prefixes. A record key is prefix + record id.
const (
	AppointmentKey        = "APPOINTMENT-"
	PatientKey            = "PATIENT-"
	RecentAppointmentsKey = "APPOINTMENTS-RECENT"
)

// Cache is a best-effort read-through cache. Failures are always soft:
// callers log and carry on against the store.
type Cache interface {
	Set(ctx context.Context, key string, value any) error
	// Get reports whether the key was present and decodes into out when it was.
	Get(ctx context.Context, key string, out any) (bool, error)
	Delete(ctx context.Context, key string) error
}

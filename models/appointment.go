package models

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus is the closed set of states an appointment moves through.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
)

// TransitionType is the caller-declared intent of an appointment update. It
// selects which guard set and notification template apply.
type TransitionType string

const (
	TransitionSchedule TransitionType = "schedule"
	TransitionCancel   TransitionType = "cancel"
)

// MinCancellationReasonLen is the shortest cancellation reason accepted.
const MinCancellationReasonLen = 2

type Appointment struct {
	ID                 string            `json:"id" bson:"id"`
	PatientID          string            `json:"patientId" bson:"patientId"`
	PrimaryPhysician   string            `json:"primaryPhysician" bson:"primaryPhysician"`
	Schedule           time.Time         `json:"schedule" bson:"schedule"`
	Status             AppointmentStatus `json:"status" bson:"status"`
	Reason             string            `json:"reason" bson:"reason"`
	Note               string            `json:"note,omitempty" bson:"note,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty"`
	CreatedAt          time.Time         `json:"createdAt" bson:"createdAt"`
}

// AppointmentPatch carries the mutable fields of an update request. Zero
// values mean the field was not supplied.
type AppointmentPatch struct {
	Status             AppointmentStatus `json:"status,omitempty"`
	Schedule           time.Time         `json:"schedule,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
}

// ValidationError reports a violated state-machine guard or required-field
// check. Guard names are stable so callers can branch on them.
type ValidationError struct {
	Guard  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Guard, e.Reason)
}

type guard struct {
	name  string
	check func(AppointmentPatch) bool
	fail  string
}

type transitionRule struct {
	target AppointmentStatus
	from   map[AppointmentStatus]bool
	guards []guard
}

var transitionRules = map[TransitionType]transitionRule{
	TransitionSchedule: {
		target: StatusScheduled,
		from:   map[AppointmentStatus]bool{StatusPending: true},
		guards: []guard{
			{
				name:  "schedule-required",
				check: func(p AppointmentPatch) bool { return !p.Schedule.IsZero() },
				fail:  "a schedule transition requires a schedule value",
			},
		},
	},
	TransitionCancel: {
		target: StatusCancelled,
		from:   map[AppointmentStatus]bool{StatusPending: true, StatusScheduled: true},
		guards: []guard{
			{
				name: "cancellation-reason-required",
				check: func(p AppointmentPatch) bool {
					return len(strings.TrimSpace(p.CancellationReason)) >= MinCancellationReasonLen
				},
				fail: "a cancel transition requires a cancellation reason of at least 2 characters",
			},
		},
	},
}

/*
* Validate a requested transition against the current status
* Resolve the rule for the transition type, check origin and guards
* The store is never touched when any guard fails
 */
func ValidateTransition(t TransitionType, current AppointmentStatus, patch AppointmentPatch) (AppointmentStatus, error) {
	rule, ok := transitionRules[t]
	if !ok {
		return "", &ValidationError{Guard: "unknown-transition-type", Reason: fmt.Sprintf("no transition named %q", t)}
	}
	if current == StatusCancelled {
		return "", &ValidationError{Guard: "terminal-status", Reason: "no transition out of a cancelled appointment"}
	}
	if !rule.from[current] {
		return "", &ValidationError{Guard: "invalid-transition", Reason: fmt.Sprintf("cannot %s an appointment in status %q", t, current)}
	}
	if patch.Status != "" && patch.Status != rule.target {
		return "", &ValidationError{Guard: "status-mismatch", Reason: fmt.Sprintf("a %s transition moves to %q, not %q", t, rule.target, patch.Status)}
	}
	for _, g := range rule.guards {
		if !g.check(patch) {
			return "", &ValidationError{Guard: g.name, Reason: g.fail}
		}
	}
	return rule.target, nil
}

// AppointmentSummary is the admin dashboard payload: the recent page of
// records plus per-status counts. TotalCount is the store's collection total
// and can exceed the counter sum when the collection outgrows the page.
type AppointmentSummary struct {
	TotalCount     int64         `json:"totalCount"`
	ScheduledCount int64         `json:"scheduledCount"`
	PendingCount   int64         `json:"pendingCount"`
	CancelledCount int64         `json:"cancelledCount"`
	Documents      []Appointment `json:"documents"`
}

// SummarizeAppointments counts statuses in a single pass. Every record
// increments exactly one counter; the document order is preserved.
func SummarizeAppointments(total int64, docs []Appointment) AppointmentSummary {
	summary := AppointmentSummary{TotalCount: total, Documents: docs}
	for _, a := range docs {
		switch a.Status {
		case StatusScheduled:
			summary.ScheduledCount++
		case StatusCancelled:
			summary.CancelledCount++
		default:
			summary.PendingCount++
		}
	}
	return summary
}

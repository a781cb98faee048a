package services

import (
	"fmt"
	"time"

	"CareDesk/models"
)

// scheduleLayout is how patient-facing messages render an appointment time.
const scheduleLayout = "Jan 2, 2006 at 3:04 PM"

// FormatSchedule renders a schedule timestamp for message text.
func FormatSchedule(t time.Time) string {
	return t.Format(scheduleLayout)
}

/*
* Build the message text for a status change
* Pure and deterministic; no sends happen here
 */
func NotificationMessage(t models.TransitionType, physician, formattedSchedule, cancellationReason string) string {
	switch t {
	case models.TransitionSchedule:
		return fmt.Sprintf(
			"Greetings from CareDesk. Your appointment with Dr. %s has been confirmed for %s.",
			physician, formattedSchedule,
		)
	case models.TransitionCancel:
		return fmt.Sprintf(
			"Greetings from CareDesk. We regret to inform you that your appointment for %s has been cancelled. Reason: %s",
			formattedSchedule, cancellationReason,
		)
	}
	return ""
}

package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"CareDesk/models"
	"CareDesk/notifier"
	"CareDesk/store"
)

// Reminder sends each patient with a scheduled appointment today a morning
// SMS. Delivery failures are logged and skipped; the job never aborts the
// remaining sends.
type Reminder struct {
	store    store.RecordStore
	notifier notifier.Notifier
	now      func() time.Time
	timeout  time.Duration
}

func NewReminder(rs store.RecordStore, n notifier.Notifier, timeout time.Duration) *Reminder {
	return &Reminder{store: rs, notifier: n, now: time.Now, timeout: timeout}
}

// StartDailyScheduler runs the reminder pass every day at 08:00.
func (j *Reminder) StartDailyScheduler() *cron.Cron {
	c := cron.New()
	c.AddFunc("0 8 * * *", func() {
		log.Println("Running daily appointment reminder pass...")
		j.RunToday()
	})
	c.Start()
	return c
}

/*
* List today's scheduled appointments
* Send each patient a reminder, logging any delivery failure
 */
func (j *Reminder) RunToday() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	now := j.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []models.Appointment
	_, err := j.store.ListDocuments(ctx, store.AppointmentCollection, store.ListQuery{
		Filter: map[string]any{
			"status":   models.StatusScheduled,
			"schedule": map[string]any{"$gte": dayStart, "$lt": dayEnd},
		},
		OrderBy: "schedule",
	}, &appointments)
	if err != nil {
		log.Println("Error listing today's scheduled appointments:", err)
		return
	}

	for _, a := range appointments {
		message := fmt.Sprintf(
			"Greetings from CareDesk. A reminder of your appointment with Dr. %s today at %s.",
			a.PrimaryPhysician, a.Schedule.Format("3:04 PM"),
		)
		if err := j.notifier.Send(ctx, a.PatientID, message); err != nil {
			log.Println("Reminder delivery failed:", err)
		}
	}
	log.Printf("Reminder pass finished, %d appointment(s) processed", len(appointments))
}

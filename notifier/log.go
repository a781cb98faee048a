package notifier

import (
	"context"
	"log"
)

// LogSMS writes messages to the application log instead of a gateway. Used
// when no Twilio credentials are configured, so the server still runs in
// development environments.
type LogSMS struct{}

func NewLogSMS() *LogSMS { return &LogSMS{} }

func (l *LogSMS) Send(ctx context.Context, recipientID, message string) error {
	log.Printf("SMS to %s: %s", recipientID, message)
	return nil
}

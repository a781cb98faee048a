package notifier

import (
	"context"
	"fmt"
)

// Notifier delivers a short text message to a patient. Delivery is advisory:
// callers treat a failed send as a logged soft failure, never as an operation
// failure.
type Notifier interface {
	Send(ctx context.Context, recipientID, message string) error
}

// DeliveryError wraps a gateway failure for a specific recipient.
type DeliveryError struct {
	RecipientID string
	Err         error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.RecipientID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// PhoneDirectory resolves a recipient id to a dialable phone number.
type PhoneDirectory interface {
	PhoneByID(ctx context.Context, id string) (string, error)
}

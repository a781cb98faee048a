package notifier

import (
	"context"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSMS sends messages through the Twilio REST API. Recipient ids are
// resolved to phone numbers through the injected directory.
type TwilioSMS struct {
	client    *twilio.RestClient
	from      string
	directory PhoneDirectory
}

// NewTwilioSMS builds the gateway adapter. The timeout bounds each REST
// call; a timed-out send surfaces as a DeliveryError, which callers treat as
// a soft failure.
func NewTwilioSMS(accountSID, authToken, from string, directory PhoneDirectory, timeout time.Duration) *TwilioSMS {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	client.SetTimeout(timeout)
	return &TwilioSMS{
		client:    client,
		from:      from,
		directory: directory,
	}
}

func (t *TwilioSMS) Send(ctx context.Context, recipientID, message string) error {
	phone, err := t.directory.PhoneByID(ctx, recipientID)
	if err != nil {
		return &DeliveryError{RecipientID: recipientID, Err: err}
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(t.from)
	params.SetBody(message)
	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return &DeliveryError{RecipientID: recipientID, Err: err}
	}
	return nil
}

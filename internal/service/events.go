package service

import (
	"context"
	"time"
)

type EventType string

const (
	EventMessageSending EventType = "message.sending"
	EventMessageSent    EventType = "message.sent"
	EventMessageFailed  EventType = "message.failed"
)

// Event reports the progress of one message. PrivateReference is included so
// consumers can correlate it with their own records; ID lets them drop
// redeliveries.
type Event struct {
	ID               string    `json:"id"`
	Type             EventType `json:"type"`
	Reference        string    `json:"reference,omitempty"`
	PrivateReference string    `json:"private_reference,omitempty"`
	Recipient        string    `json:"recipient,omitempty"`
	SMSRef           string    `json:"sms_ref,omitempty"`
	Error            string    `json:"error,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

type EventDispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}

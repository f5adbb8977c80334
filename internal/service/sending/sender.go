package sending

import (
	"context"
	"errors"
	"time"
)

// ErrSendFailed is returned when a message could not be delivered.
var ErrSendFailed = errors.New("failed to send email")

// Address is a display name plus mailbox.
type Address struct {
	Name  string
	Email string
}

// Message is one outbound email.
type Message struct {
	To      Address
	From    Address
	ReplyTo string
	Subject string
	Body    string

	CampaignID string
	LeadID     string
}

// Result describes an accepted message.
type Result struct {
	MessageID string
	SentAt    time.Time
}

// Sender sends a single email. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, msg *Message) (*Result, error)
}

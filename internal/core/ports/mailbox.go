package ports

import "context"

// MessageRef identifies one mailbox message without its content.
type MessageRef struct {
	ID string
}

// Attachment is one file attached to a mailbox message.
type Attachment struct {
	Filename string
	MimeType string
	Data     []byte
}

// Message is a fully fetched mailbox message.
type Message struct {
	ID          string
	From        string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailbox defines the contract with the external mail system, covering
// both sides of the flow: reading inbound purchase documents and sending
// outbound notifications.
type Mailbox interface {
	// GetUnreadMessages lists unread messages matching the query.
	GetUnreadMessages(ctx context.Context, query string) ([]MessageRef, error)

	// GetMessage fetches one message in full, attachments included.
	GetMessage(ctx context.Context, id string) (*Message, error)

	// MarkRead marks a message as read so later sweeps skip it.
	MarkRead(ctx context.Context, id string) error

	// Send delivers a plain-text message to one recipient.
	Send(ctx context.Context, to, subject, body string) error
}

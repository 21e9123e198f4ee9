package googleworkspace

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"strings"

	"pedidos/internal/core/ports"

	"google.golang.org/api/gmail/v1"
)

const gmailUser = "me"

// GmailMailbox implements the Mailbox port on the Gmail API.
type GmailMailbox struct {
	svc    *gmail.Service
	logger *slog.Logger
}

// NewGmailMailbox creates a mailbox adapter over an authorized Gmail service.
func NewGmailMailbox(svc *gmail.Service, logger *slog.Logger) *GmailMailbox {
	return &GmailMailbox{
		svc:    svc,
		logger: logger.With("component", "gmail"),
	}
}

// GetUnreadMessages lists unread messages matching the Gmail search query.
func (m *GmailMailbox) GetUnreadMessages(ctx context.Context, query string) ([]ports.MessageRef, error) {
	m.logger.Info("searching mailbox", "query", query)

	response, err := m.svc.Users.Messages.List(gmailUser).Q(query).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	refs := make([]ports.MessageRef, 0, len(response.Messages))
	for _, message := range response.Messages {
		refs = append(refs, ports.MessageRef{ID: message.Id})
	}

	m.logger.Info("mailbox search finished", "matches", len(refs))
	return refs, nil
}

// GetMessage fetches one message in full and downloads its attachments.
func (m *GmailMailbox) GetMessage(ctx context.Context, id string) (*ports.Message, error) {
	full, err := m.svc.Users.Messages.Get(gmailUser, id).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get message %s: %w", id, err)
	}

	message := &ports.Message{
		ID:      full.Id,
		From:    headerValue(full.Payload, "From"),
		Subject: headerValue(full.Payload, "Subject"),
		Body:    extractBody(full.Payload),
	}

	attachments, err := m.downloadAttachments(ctx, full)
	if err != nil {
		return nil, err
	}
	message.Attachments = attachments

	return message, nil
}

// MarkRead removes the UNREAD label so later sweeps skip the message.
func (m *GmailMailbox) MarkRead(ctx context.Context, id string) error {
	request := &gmail.ModifyMessageRequest{
		RemoveLabelIds: []string{"UNREAD"},
	}
	if _, err := m.svc.Users.Messages.Modify(gmailUser, id, request).Context(ctx).Do(); err != nil {
		return fmt.Errorf("mark message %s read: %w", id, err)
	}

	m.logger.Info("message marked read", "message_id", id)
	return nil
}

// Send delivers a plain-text message through the authorized account.
func (m *GmailMailbox) Send(ctx context.Context, to, subject, body string) error {
	raw := buildRawMessage(to, subject, body)

	_, err := m.svc.Users.Messages.Send(gmailUser, &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("send message to %s: %w", to, err)
	}

	m.logger.Info("message sent", "to", to, "subject", subject)
	return nil
}

func (m *GmailMailbox) downloadAttachments(ctx context.Context, full *gmail.Message) ([]ports.Attachment, error) {
	var attachments []ports.Attachment

	for _, part := range allParts(full.Payload) {
		if part.Filename == "" || part.Body == nil || part.Body.AttachmentId == "" {
			continue
		}

		body, err := m.svc.Users.Messages.Attachments.
			Get(gmailUser, full.Id, part.Body.AttachmentId).
			Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("download attachment %s: %w", part.Filename, err)
		}

		data, err := decodeWebSafe(body.Data)
		if err != nil {
			return nil, fmt.Errorf("decode attachment %s: %w", part.Filename, err)
		}

		m.logger.Info("attachment downloaded", "filename", part.Filename, "bytes", len(data))
		attachments = append(attachments, ports.Attachment{
			Filename: part.Filename,
			MimeType: part.MimeType,
			Data:     data,
		})
	}

	return attachments, nil
}

// buildRawMessage assembles a minimal RFC 2822 message and encodes it the way
// the Gmail API expects. The subject is Q-encoded for the Spanish bodies.
func buildRawMessage(to, subject, body string) string {
	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("UTF-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return base64.RawURLEncoding.EncodeToString([]byte(b.String()))
}

// headerValue returns the first header with the given name, or empty.
func headerValue(payload *gmail.MessagePart, name string) string {
	if payload == nil {
		return ""
	}
	for _, header := range payload.Headers {
		if header.Name == name {
			return header.Value
		}
	}
	return ""
}

// extractBody returns the first decodable text part of the message. Prefers
// the top-level body, then walks the part tree for text/plain or text/html.
func extractBody(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}

	if payload.Body != nil && payload.Body.Data != "" {
		if text, err := decodeWebSafe(payload.Body.Data); err == nil {
			return string(text)
		}
	}

	for _, part := range allParts(payload) {
		if part.MimeType != "text/plain" && part.MimeType != "text/html" {
			continue
		}
		if part.Body == nil || part.Body.Data == "" {
			continue
		}
		if text, err := decodeWebSafe(part.Body.Data); err == nil {
			return string(text)
		}
	}

	return ""
}

// allParts flattens the nested multipart tree into one slice.
func allParts(payload *gmail.MessagePart) []*gmail.MessagePart {
	if payload == nil {
		return nil
	}

	var parts []*gmail.MessagePart
	for _, part := range payload.Parts {
		parts = append(parts, part)
		parts = append(parts, allParts(part)...)
	}
	return parts
}

// decodeWebSafe decodes the web-safe base64 the Gmail API uses, tolerating
// both padded and unpadded payloads.
func decodeWebSafe(data string) ([]byte, error) {
	if decoded, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return decoded, nil
	}
	return base64.URLEncoding.DecodeString(data)
}

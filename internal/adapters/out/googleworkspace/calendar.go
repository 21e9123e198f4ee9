package googleworkspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pedidos/internal/core/ports"

	"google.golang.org/api/calendar/v3"
)

// deliveryTimeZone pins delivery events to the business's local time.
const deliveryTimeZone = "America/Argentina/Buenos_Aires"

// GoogleCalendar implements the Calendar port on the Google Calendar API.
type GoogleCalendar struct {
	svc        *calendar.Service
	calendarID string
	logger     *slog.Logger
}

// NewGoogleCalendar creates a calendar adapter over an authorized Calendar
// service. Events are written to the given calendar, usually "primary".
func NewGoogleCalendar(svc *calendar.Service, calendarID string, logger *slog.Logger) *GoogleCalendar {
	return &GoogleCalendar{
		svc:        svc,
		calendarID: calendarID,
		logger:     logger.With("component", "calendar"),
	}
}

// CreateDeliveryEvent schedules the delivery as a whole-day event with an
// email reminder 48 hours ahead and a popup 24 hours ahead.
func (c *GoogleCalendar) CreateDeliveryEvent(ctx context.Context, event ports.DeliveryEvent) (string, error) {
	start := time.Date(
		event.Date.Year(), event.Date.Month(), event.Date.Day(),
		0, 0, 0, 0, event.Date.Location(),
	)
	end := start.Add(24*time.Hour - time.Minute)

	calendarEvent := &calendar.Event{
		Summary:     "Entrega Pedido: " + event.OrderNumber,
		Location:    event.Place,
		Description: event.Details,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: deliveryTimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: deliveryTimeZone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 48 * 60},
				{Method: "popup", Minutes: 24 * 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, calendarEvent).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert delivery event for %s: %w", event.OrderNumber, err)
	}

	c.logger.Info("delivery event created",
		"order_number", event.OrderNumber,
		"event_id", created.Id,
		"link", created.HtmlLink,
	)
	return created.Id, nil
}

// UpdateEventDescription replaces the description of an existing event.
func (c *GoogleCalendar) UpdateEventDescription(ctx context.Context, eventID, description string) error {
	event, err := c.svc.Events.Get(c.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get event %s: %w", eventID, err)
	}

	event.Description = description

	if _, err := c.svc.Events.Update(c.calendarID, eventID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("update event %s: %w", eventID, err)
	}

	c.logger.Info("delivery event updated", "event_id", eventID)
	return nil
}

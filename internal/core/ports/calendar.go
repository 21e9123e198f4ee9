package ports

import (
	"context"
	"time"
)

// DeliveryEvent carries what the calendar needs to schedule one delivery.
type DeliveryEvent struct {
	OrderNumber string
	Date        time.Time
	Place       string
	Details     string
}

// Calendar defines the contract with the external calendar system.
type Calendar interface {
	// CreateDeliveryEvent schedules an all-day event for the delivery and
	// returns the external event id.
	CreateDeliveryEvent(ctx context.Context, event DeliveryEvent) (string, error)

	// UpdateEventDescription replaces the description of an existing
	// event, e.g. when a delivery slot is confirmed.
	UpdateEventDescription(ctx context.Context, eventID, description string) error
}

package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrSendToPlantCommandIsNotConstructed = errors.New(
		"SendToPlantCommand must be created via NewSendToPlantCommand constructor",
	)
	ErrSentAtIsRequired = errors.New("sent timestamp is required")
)

// SendToPlantCommand represents a request to dispatch an order to the
// manufacturing plant.
type SendToPlantCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	sentAt  time.Time

	guard guard.ConstructorGuard
}

// NewSendToPlantCommand creates the command after validating the order id
// and the dispatch timestamp.
func NewSendToPlantCommand(orderID kernel.UUID, sentAt time.Time) (SendToPlantCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SendToPlantCommand{}, err
	}
	if sentAt.IsZero() {
		return SendToPlantCommand{}, ErrSentAtIsRequired
	}

	return SendToPlantCommand{
		orderID: orderID,
		sentAt:  sentAt,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendToPlantCommand) Validate() error {
	return c.guard.Validate(ErrSendToPlantCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c SendToPlantCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SentAt returns the dispatch timestamp the transition records.
func (c SendToPlantCommand) SentAt() time.Time {
	return c.sentAt
}

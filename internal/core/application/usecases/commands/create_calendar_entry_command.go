package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrCreateCalendarEntryCommandIsNotConstructed = errors.New(
	"CreateCalendarEntryCommand must be created via NewCreateCalendarEntryCommand constructor",
)

// CreateCalendarEntryCommand represents a request to schedule an order's
// delivery on the shared calendar.
type CreateCalendarEntryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateCalendarEntryCommand creates the command after validating the
// order id.
func NewCreateCalendarEntryCommand(orderID kernel.UUID) (CreateCalendarEntryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateCalendarEntryCommand{}, err
	}

	return CreateCalendarEntryCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCalendarEntryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCalendarEntryCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateCalendarEntryCommand) OrderID() kernel.UUID {
	return c.orderID
}

package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrRequestSlotCommandIsNotConstructed = errors.New(
	"RequestSlotCommand must be created via NewRequestSlotCommand constructor",
)

// RequestSlotCommand represents a request for a delivery slot at the
// distribution center.
type RequestSlotCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestSlotCommand creates the command after validating the order id.
func NewRequestSlotCommand(orderID kernel.UUID) (RequestSlotCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RequestSlotCommand{}, err
	}

	return RequestSlotCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestSlotCommand) Validate() error {
	return c.guard.Validate(ErrRequestSlotCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RequestSlotCommand) OrderID() kernel.UUID {
	return c.orderID
}

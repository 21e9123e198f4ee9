package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrMarkChargedCommandIsNotConstructed = errors.New(
	"MarkChargedCommand must be created via NewMarkChargedCommand constructor",
)

// MarkChargedCommand records that the payment was collected.
type MarkChargedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkChargedCommand creates the command after validating the order id.
func NewMarkChargedCommand(orderID kernel.UUID) (MarkChargedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkChargedCommand{}, err
	}

	return MarkChargedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkChargedCommand) Validate() error {
	return c.guard.Validate(ErrMarkChargedCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c MarkChargedCommand) OrderID() kernel.UUID {
	return c.orderID
}

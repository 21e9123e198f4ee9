package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand closes an order after its payment was collected.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinalizeOrderCommand creates the command after validating the order id.
func NewFinalizeOrderCommand(orderID kernel.UUID) (FinalizeOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return FinalizeOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c FinalizeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrMarkReadyForDeliveryCommandIsNotConstructed = errors.New(
	"MarkReadyForDeliveryCommand must be created via NewMarkReadyForDeliveryCommand constructor",
)

// MarkReadyForDeliveryCommand records that the goods and paperwork are ready to go out.
type MarkReadyForDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyForDeliveryCommand creates the command after validating the order id.
func NewMarkReadyForDeliveryCommand(orderID kernel.UUID) (MarkReadyForDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkReadyForDeliveryCommand{}, err
	}

	return MarkReadyForDeliveryCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyForDeliveryCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c MarkReadyForDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrMarkInProductionCommandIsNotConstructed = errors.New(
	"MarkInProductionCommand must be created via NewMarkInProductionCommand constructor",
)

// MarkInProductionCommand records that the plant confirmed the order entered production.
type MarkInProductionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkInProductionCommand creates the command after validating the order id.
func NewMarkInProductionCommand(orderID kernel.UUID) (MarkInProductionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkInProductionCommand{}, err
	}

	return MarkInProductionCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInProductionCommand) Validate() error {
	return c.guard.Validate(ErrMarkInProductionCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c MarkInProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}

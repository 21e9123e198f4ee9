package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrMarkDocumentsReceivedCommandIsNotConstructed = errors.New(
	"MarkDocumentsReceivedCommand must be created via NewMarkDocumentsReceivedCommand constructor",
)

// MarkDocumentsReceivedCommand records that the sealed delivery documents came back.
type MarkDocumentsReceivedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDocumentsReceivedCommand creates the command after validating the order id.
func NewMarkDocumentsReceivedCommand(orderID kernel.UUID) (MarkDocumentsReceivedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkDocumentsReceivedCommand{}, err
	}

	return MarkDocumentsReceivedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDocumentsReceivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkDocumentsReceivedCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c MarkDocumentsReceivedCommand) OrderID() kernel.UUID {
	return c.orderID
}

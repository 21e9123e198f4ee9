package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrMarkPaymentProofReceivedCommandIsNotConstructed = errors.New(
		"MarkPaymentProofReceivedCommand must be created via NewMarkPaymentProofReceivedCommand constructor",
	)
	ErrReceiptDateIsRequired = errors.New("receipt date is required")
)

// MarkPaymentProofReceivedCommand records the arrival of the payment proof. The expected charge date is derived sixty days after the actual delivery, not after the receipt.
type MarkPaymentProofReceivedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	date    time.Time

	guard guard.ConstructorGuard
}

// NewMarkPaymentProofReceivedCommand creates the command after validating the order id and
// the date.
func NewMarkPaymentProofReceivedCommand(orderID kernel.UUID, date time.Time) (MarkPaymentProofReceivedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkPaymentProofReceivedCommand{}, err
	}
	if date.IsZero() {
		return MarkPaymentProofReceivedCommand{}, ErrReceiptDateIsRequired
	}

	return MarkPaymentProofReceivedCommand{
		orderID: orderID,
		date:    date,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPaymentProofReceivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaymentProofReceivedCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c MarkPaymentProofReceivedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReceiptDate returns the date the transition records.
func (c MarkPaymentProofReceivedCommand) ReceiptDate() time.Time {
	return c.date
}

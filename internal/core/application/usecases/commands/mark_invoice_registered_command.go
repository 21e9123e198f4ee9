package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrMarkInvoiceRegisteredCommandIsNotConstructed = errors.New(
		"MarkInvoiceRegisteredCommand must be created via NewMarkInvoiceRegisteredCommand constructor",
	)
	ErrInvoiceDateIsRequired = errors.New("invoice date is required")
)

// MarkInvoiceRegisteredCommand records that the invoice was registered with the client.
type MarkInvoiceRegisteredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	date    time.Time

	guard guard.ConstructorGuard
}

// NewMarkInvoiceRegisteredCommand creates the command after validating the order id and
// the date.
func NewMarkInvoiceRegisteredCommand(orderID kernel.UUID, date time.Time) (MarkInvoiceRegisteredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkInvoiceRegisteredCommand{}, err
	}
	if date.IsZero() {
		return MarkInvoiceRegisteredCommand{}, ErrInvoiceDateIsRequired
	}

	return MarkInvoiceRegisteredCommand{
		orderID: orderID,
		date:    date,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInvoiceRegisteredCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoiceRegisteredCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c MarkInvoiceRegisteredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// InvoiceDate returns the date the transition records.
func (c MarkInvoiceRegisteredCommand) InvoiceDate() time.Time {
	return c.date
}

package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrMarkDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
	)
	ErrActualDeliveryDateIsRequired = errors.New("actual delivery date is required")
)

// MarkDeliveredCommand records the actual delivery. The expected payment-proof date is derived thirty days after it.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	date    time.Time

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates the command after validating the order id and
// the date.
func NewMarkDeliveredCommand(orderID kernel.UUID, date time.Time) (MarkDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkDeliveredCommand{}, err
	}
	if date.IsZero() {
		return MarkDeliveredCommand{}, ErrActualDeliveryDateIsRequired
	}

	return MarkDeliveredCommand{
		orderID: orderID,
		date:    date,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActualDeliveryDate returns the date the transition records.
func (c MarkDeliveredCommand) ActualDeliveryDate() time.Time {
	return c.date
}

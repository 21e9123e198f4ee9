package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrConfirmSlotCommandIsNotConstructed = errors.New(
		"ConfirmSlotCommand must be created via NewConfirmSlotCommand constructor",
	)
	ErrSlotLabelIsRequired = errors.New("slot label is required")
	ErrSlotTimeIsRequired  = errors.New("slot timestamp is required")
)

// ConfirmSlotCommand represents the distribution center's confirmation of
// a delivery slot.
type ConfirmSlotCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	label   string
	slotAt  time.Time

	guard guard.ConstructorGuard
}

// NewConfirmSlotCommand creates the command after validating the order
// id, the slot label, and the slot timestamp.
func NewConfirmSlotCommand(orderID kernel.UUID, label string, slotAt time.Time) (ConfirmSlotCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmSlotCommand{}, err
	}
	if label == "" {
		return ConfirmSlotCommand{}, ErrSlotLabelIsRequired
	}
	if slotAt.IsZero() {
		return ConfirmSlotCommand{}, ErrSlotTimeIsRequired
	}

	return ConfirmSlotCommand{
		orderID: orderID,
		label:   label,
		slotAt:  slotAt,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmSlotCommand) Validate() error {
	return c.guard.Validate(ErrConfirmSlotCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ConfirmSlotCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Label returns the confirmed slot label, e.g. "Turno 14:30".
func (c ConfirmSlotCommand) Label() string {
	return c.label
}

// SlotAt returns the confirmed slot timestamp.
func (c ConfirmSlotCommand) SlotAt() time.Time {
	return c.slotAt
}

package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrReceivedAtIsRequired   = errors.New("received timestamp is required")
	ErrDeliveryDateIsRequired = errors.New("delivery date is required")
	ErrItemsAreRequired       = errors.New("at least one line item is required")
)

// OrderItemInput is one requested line item, still unvalidated. The
// handler turns it into a domain line item.
type OrderItemInput struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateOrderCommand represents a request to admit a new purchase order,
// either assembled by the ingestion pipeline from a validated fragment or
// submitted directly through the API.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, time.Now(), deliveryDate, items, details)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	receivedAt   time.Time
	deliveryDate time.Time
	items        []OrderItemInput
	details      order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to admit a new purchase order.
// Validates that the order ID is valid, the timestamps are set, and at
// least one line item is present. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	receivedAt time.Time,
	deliveryDate time.Time,
	items []OrderItemInput,
	details order.Details,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setReceivedAt(receivedAt),
		orderCommand.setDeliveryDate(deliveryDate),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReceivedAt returns when the purchase document arrived.
func (c CreateOrderCommand) ReceivedAt() time.Time {
	return c.receivedAt
}

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// Details returns the optional delivery and billing fields.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setReceivedAt(receivedAt time.Time) error {
	if receivedAt.IsZero() {
		return ErrReceivedAtIsRequired
	}

	c.receivedAt = receivedAt
	return nil
}

func (c *CreateOrderCommand) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return ErrDeliveryDateIsRequired
	}

	c.deliveryDate = deliveryDate
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

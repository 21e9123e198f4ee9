// Package queries implements the read side of the order service. Query
// handlers bypass the domain aggregate and read the database directly,
// returning flat response structures for the HTTP layer and the jobs.
package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its line items by identifier.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse carries the full detail of one order.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	Number           string
	Status           string
	ReceivedAt       time.Time
	DeliveryDate     time.Time
	DeliveryTime     string
	BillingClient    string
	Recipient        string
	DeliveryAddress  string
	DeliveryPlace    string
	PurchaseOrderRef string
	Notes            string
	Total            decimal.Decimal
	Commission       decimal.Decimal
	Items            []GetOrderItemResponse
}

// GetOrderItemResponse is one line of the order detail.
type GetOrderItemResponse struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
	ErrGetOrdersByMonthQueryIsNotConstructed = errors.New(
		"GetOrdersByMonthQuery must be created via NewGetOrdersByMonthQuery constructor",
	)
	ErrGetOrdersByYearQueryIsNotConstructed = errors.New(
		"GetOrdersByYearQuery must be created via NewGetOrdersByYearQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order in the system, oldest first.
// This is a parameterless query backing the main listing endpoint.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetOrdersByMonthQuery retrieves the orders received in one calendar month.
type GetOrdersByMonthQuery struct {
	month int
	year  int

	guard guard.ConstructorGuard
}

// NewGetOrdersByMonthQuery creates a query for the orders of one month.
// Month must be in the 1..12 range and year must be positive.
func NewGetOrdersByMonthQuery(month, year int) (GetOrdersByMonthQuery, error) {
	var err error

	if month < 1 || month > 12 {
		err = errors.Join(err, errs.NewValueIsInvalidError("month"))
	}
	if year <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("year"))
	}

	if err != nil {
		return GetOrdersByMonthQuery{}, err
	}

	return GetOrdersByMonthQuery{
		month: month,
		year:  year,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Month returns the requested calendar month (1..12).
func (q GetOrdersByMonthQuery) Month() int {
	return q.month
}

// Year returns the requested year.
func (q GetOrdersByMonthQuery) Year() int {
	return q.year
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByMonthQueryIsNotConstructed if validation fails.
func (q GetOrdersByMonthQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByMonthQueryIsNotConstructed)
}

// GetOrdersByYearQuery retrieves the orders received in one calendar year.
type GetOrdersByYearQuery struct {
	year int

	guard guard.ConstructorGuard
}

// NewGetOrdersByYearQuery creates a query for the orders of one year.
func NewGetOrdersByYearQuery(year int) (GetOrdersByYearQuery, error) {
	if year <= 0 {
		return GetOrdersByYearQuery{}, errs.NewValueIsInvalidError("year")
	}

	return GetOrdersByYearQuery{
		year:  year,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Year returns the requested year.
func (q GetOrdersByYearQuery) Year() int {
	return q.year
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByYearQueryIsNotConstructed if validation fails.
func (q GetOrdersByYearQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByYearQueryIsNotConstructed)
}

// OrderSummaryResponse is one row of an order listing. The listings skip the
// line items; the detail query loads them.
type OrderSummaryResponse struct {
	ID            kernel.UUID
	Number        string
	Status        string
	ReceivedAt    time.Time
	DeliveryDate  time.Time
	BillingClient string
	Recipient     string
	DeliveryPlace string
	Total         decimal.Decimal
}

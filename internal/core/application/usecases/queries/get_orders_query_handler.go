package queries

import (
	"context"
	"database/sql"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderSummaryColumns = `
	SELECT
		id,
		number,
		status,
		received_at,
		delivery_date,
		billing_client,
		recipient,
		delivery_place,
		total
	FROM orders
`

// GetAllOrdersQueryHandler retrieves every order for the listing endpoint.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order listing.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderSummaryColumns + `ORDER BY received_at, number`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// GetOrdersByMonthQueryHandler retrieves the orders of one calendar month.
type GetOrdersByMonthQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByMonthQueryHandler creates a handler for monthly order listings.
func NewGetOrdersByMonthQueryHandler(db *gorm.DB) GetOrdersByMonthQueryHandler {
	return GetOrdersByMonthQueryHandler{db: db}
}

// Handle executes the query against the month and year stamped at creation.
func (h GetOrdersByMonthQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByMonthQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderSummaryColumns+`WHERE month = ? AND year = ? ORDER BY received_at, number`,
		query.Month(), query.Year(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// GetOrdersByYearQueryHandler retrieves the orders of one calendar year.
type GetOrdersByYearQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByYearQueryHandler creates a handler for yearly order listings.
func NewGetOrdersByYearQueryHandler(db *gorm.DB) GetOrdersByYearQueryHandler {
	return GetOrdersByYearQueryHandler{db: db}
}

// Handle executes the query against the year stamped at creation.
func (h GetOrdersByYearQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByYearQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderSummaryColumns+`WHERE year = ? ORDER BY received_at, number`,
		query.Year(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// scanOrderSummaries maps listing rows onto summary responses. All three
// listing handlers share the same column set.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	summaries := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID
		var status int

		err := rows.Scan(
			&id,
			&summary.Number,
			&status,
			&summary.ReceivedAt,
			&summary.DeliveryDate,
			&summary.BillingClient,
			&summary.Recipient,
			&summary.DeliveryPlace,
			&summary.Total,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID
		summary.Status = order.Status(status).String()

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

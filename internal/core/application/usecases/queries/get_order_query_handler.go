package queries

import (
	"context"
	"database/sql"
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the requested identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			received_at,
			delivery_date,
			delivery_time,
			billing_client,
			recipient,
			delivery_address,
			delivery_place,
			purchase_order_ref,
			notes,
			total,
			commission
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Number,
		&status,
		&resp.ReceivedAt,
		&resp.DeliveryDate,
		&resp.DeliveryTime,
		&resp.BillingClient,
		&resp.Recipient,
		&resp.DeliveryAddress,
		&resp.DeliveryPlace,
		&resp.PurchaseOrderRef,
		&resp.Notes,
		&resp.Total,
		&resp.Commission,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()

	items, err := h.loadItems(ctx, id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID uuid.UUID) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product,
			quantity,
			unit_price,
			subtotal
		FROM line_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var unitPrice, subtotal decimal.Decimal

		if err = rows.Scan(&item.Product, &item.Quantity, &unitPrice, &subtotal); err != nil {
			return nil, err
		}

		item.UnitPrice = unitPrice
		item.Subtotal = subtotal
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Package ports defines the driven-side interfaces of the order domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status, timestamps, and source message.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetBySourceMessageID retrieves the order created from the given
	// mailbox message, if any. Used to keep re-ingestion of the same
	// message from creating a duplicate.
	GetBySourceMessageID(ctx context.Context, messageID string) (*order.Order, error)

	// GetAllByStatus retrieves all orders currently in the given status.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllByStatusAndDeliveryDateRange retrieves orders in the given
	// status whose delivery date falls within [from, to].
	GetAllByStatusAndDeliveryDateRange(ctx context.Context, status order.Status, from, to time.Time) ([]*order.Order, error)

	// GetAllByMonthYear retrieves all orders received in the given month.
	GetAllByMonthYear(ctx context.Context, month, year int) ([]*order.Order, error)

	// GetAllDueForPlantReminder retrieves orders sent to the plant before
	// the cutoff that have no plant reminder stamp yet.
	GetAllDueForPlantReminder(ctx context.Context, sentBefore time.Time) ([]*order.Order, error)

	// GetAllDueForLogisticsReminder retrieves orders still moving toward
	// delivery on the given date that have no logistics reminder stamp
	// yet.
	GetAllDueForLogisticsReminder(ctx context.Context, deliveryDate time.Time) ([]*order.Order, error)

	// GetAllAwaitingPaymentProof retrieves delivered, invoiced orders
	// whose expected payment-proof date passed before asOf and whose
	// proof has not arrived.
	GetAllAwaitingPaymentProof(ctx context.Context, asOf time.Time) ([]*order.Order, error)

	// Count returns the total number of orders ever stored. Feeds the
	// running sequence of order numbers.
	Count(ctx context.Context) (int64, error)
}

package orderrepo

import (
	"context"
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Line items are immutable
// after ingestion, so only the order row is written. Select("*") forces
// zero-valued columns through since most lifecycle fields start empty.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "Items").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, line items included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySourceMessageID retrieves the order ingested from the given mailbox message.
func (r *GormOrderRepository) GetBySourceMessageID(ctx context.Context, messageID string) (*order.Order, error) {
	if messageID == "" {
		return nil, errs.NewValueIsRequiredError("messageID")
	}

	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "source_message_id = ?", messageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", messageID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Order("received_at").
		Find(&dtos, "status = ?", int(status)).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllByStatusAndDeliveryDateRange retrieves orders in the given status
// delivering within [from, to].
func (r *GormOrderRepository) GetAllByStatusAndDeliveryDateRange(
	ctx context.Context, status order.Status, from, to time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Order("delivery_date").
		Find(&dtos, "status = ? AND delivery_date BETWEEN ? AND ?", int(status), from, to).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllByMonthYear retrieves all orders received in the given month.
func (r *GormOrderRepository) GetAllByMonthYear(ctx context.Context, month, year int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Order("received_at").
		Find(&dtos, "month = ? AND year = ?", month, year).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllDueForPlantReminder retrieves orders sent to the plant before the
// cutoff that have no plant reminder stamp yet.
func (r *GormOrderRepository) GetAllDueForPlantReminder(ctx context.Context, sentBefore time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Find(&dtos, "status = ? AND sent_to_plant_at <= ? AND plant_reminder_at IS NULL",
			int(order.SentToPlant), sentBefore).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllDueForLogisticsReminder retrieves orders still moving toward delivery
// on the given date that have no logistics reminder stamp yet. The watched
// states match the ones the aggregate accepts the reminder from.
func (r *GormOrderRepository) GetAllDueForLogisticsReminder(ctx context.Context, deliveryDate time.Time) ([]*order.Order, error) {
	watched := []int{int(order.InProduction), int(order.SlotConfirmed), int(order.ReadyForDelivery)}

	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Find(&dtos, "status IN ? AND delivery_date = ? AND logistics_reminder_at IS NULL",
			watched, deliveryDate).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllAwaitingPaymentProof retrieves invoiced orders whose expected
// payment-proof date passed before asOf without a proof arriving.
func (r *GormOrderRepository) GetAllAwaitingPaymentProof(ctx context.Context, asOf time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Find(&dtos, "status = ? AND expected_payment_proof_date < ? AND payment_proof_received_at IS NULL",
			int(order.InvoiceRegistered), asOf).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// Count returns the total number of orders ever stored.
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

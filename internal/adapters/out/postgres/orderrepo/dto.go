// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing for
// the lifecycle queries (status sweeps, reminder cutoffs, monthly listings).
//
// Total is denormalized from the line items so the reporting queries can read
// it without joining; the domain recomputes it on restore regardless.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number string    `gorm:"uniqueIndex"`
	Status int       `gorm:"index"`

	ReceivedAt   time.Time
	DeliveryDate time.Time `gorm:"index"`
	DeliveryTime string

	BillingClient    string
	Recipient        string
	DeliveryAddress  string
	DeliveryPlace    string
	SourceEmail      string
	SourceMessageID  *string `gorm:"uniqueIndex"`
	PurchaseOrderRef string
	Notes            string

	Items      []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total      decimal.Decimal `gorm:"type:numeric"`
	Commission decimal.Decimal `gorm:"type:numeric"`

	CalendarEventID string

	SentToPlantAt         *time.Time
	PlantReminderAt       *time.Time
	LogisticsReminderAt   *time.Time
	LogisticsReminderFrom int

	SlotLabel string
	SlotAt    *time.Time

	DeliveryNoteGenerated bool
	LabelGenerated        bool
	SealedDocsReceived    bool

	ActualDeliveryDate       *time.Time
	InvoiceRegisteredAt      *time.Time
	ExpectedPaymentProofDate *time.Time `gorm:"index"`
	PaymentProofReceivedAt   *time.Time
	ExpectedChargeDate       *time.Time

	Month int `gorm:"index:idx_orders_month_year"`
	Year  int `gorm:"index:idx_orders_month_year"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one order line in its own table. Position keeps the
// lines in document order when reading them back.
type LineItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Position  int
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
	Subtotal  decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// An empty source message ID maps to NULL so the unique index only applies to
// orders ingested from the mailbox.
func fromDomain(aggregate *order.Order) OrderDTO {
	var sourceMessageID *string
	if id := aggregate.SourceMessageID(); id != "" {
		sourceMessageID = &id
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Position:  i,
			Product:   item.Product(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	return OrderDTO{
		ID:     aggregate.ID().Bytes(),
		Number: aggregate.Number(),
		Status: int(aggregate.Status()),

		ReceivedAt:   aggregate.ReceivedAt(),
		DeliveryDate: aggregate.DeliveryDate(),
		DeliveryTime: aggregate.DeliveryTime(),

		BillingClient:    aggregate.BillingClient(),
		Recipient:        aggregate.Recipient(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		DeliveryPlace:    aggregate.DeliveryPlace(),
		SourceEmail:      aggregate.SourceEmail(),
		SourceMessageID:  sourceMessageID,
		PurchaseOrderRef: aggregate.PurchaseOrderRef(),
		Notes:            aggregate.Notes(),

		Items:      items,
		Total:      aggregate.Total(),
		Commission: aggregate.Commission(),

		CalendarEventID: aggregate.CalendarEventID(),

		SentToPlantAt:         aggregate.SentToPlantAt(),
		PlantReminderAt:       aggregate.PlantReminderAt(),
		LogisticsReminderAt:   aggregate.LogisticsReminderAt(),
		LogisticsReminderFrom: int(aggregate.LogisticsReminderFrom()),

		SlotLabel: aggregate.SlotLabel(),
		SlotAt:    aggregate.SlotAt(),

		DeliveryNoteGenerated: aggregate.DeliveryNoteGenerated(),
		LabelGenerated:        aggregate.LabelGenerated(),
		SealedDocsReceived:    aggregate.SealedDocsReceived(),

		ActualDeliveryDate:       aggregate.ActualDeliveryDate(),
		InvoiceRegisteredAt:      aggregate.InvoiceRegisteredAt(),
		ExpectedPaymentProofDate: aggregate.ExpectedPaymentProofDate(),
		PaymentProofReceivedAt:   aggregate.PaymentProofReceivedAt(),
		ExpectedChargeDate:       aggregate.ExpectedChargeDate(),

		Month: aggregate.Month(),
		Year:  aggregate.Year(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate, including line items, using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.Product, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var sourceMessageID string
	if dto.SourceMessageID != nil {
		sourceMessageID = *dto.SourceMessageID
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:     id,
		Number: dto.Number,
		Status: order.Status(dto.Status),

		ReceivedAt:   dto.ReceivedAt,
		DeliveryDate: dto.DeliveryDate,
		DeliveryTime: dto.DeliveryTime,

		BillingClient:    dto.BillingClient,
		Recipient:        dto.Recipient,
		DeliveryAddress:  dto.DeliveryAddress,
		DeliveryPlace:    dto.DeliveryPlace,
		SourceEmail:      dto.SourceEmail,
		SourceMessageID:  sourceMessageID,
		PurchaseOrderRef: dto.PurchaseOrderRef,
		Notes:            dto.Notes,

		Items:      items,
		Commission: dto.Commission,

		CalendarEventID: dto.CalendarEventID,

		SentToPlantAt:         dto.SentToPlantAt,
		PlantReminderAt:       dto.PlantReminderAt,
		LogisticsReminderAt:   dto.LogisticsReminderAt,
		LogisticsReminderFrom: order.Status(dto.LogisticsReminderFrom),

		SlotLabel: dto.SlotLabel,
		SlotAt:    dto.SlotAt,

		DeliveryNoteGenerated: dto.DeliveryNoteGenerated,
		LabelGenerated:        dto.LabelGenerated,
		SealedDocsReceived:    dto.SealedDocsReceived,

		ActualDeliveryDate:       dto.ActualDeliveryDate,
		InvoiceRegisteredAt:      dto.InvoiceRegisteredAt,
		ExpectedPaymentProofDate: dto.ExpectedPaymentProofDate,
		PaymentProofReceivedAt:   dto.PaymentProofReceivedAt,
		ExpectedChargeDate:       dto.ExpectedChargeDate,

		Month: dto.Month,
		Year:  dto.Year,
	})
}

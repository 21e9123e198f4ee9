package order

import (
	"time"

	"pedidos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// RestoreParams carries every persisted attribute needed to rebuild an Order.
// Only the persistence layer should use it.
type RestoreParams struct {
	ID     kernel.UUID
	Number string
	Status Status

	ReceivedAt   time.Time
	DeliveryDate time.Time
	DeliveryTime string

	BillingClient    string
	Recipient        string
	DeliveryAddress  string
	DeliveryPlace    string
	SourceEmail      string
	SourceMessageID  string
	PurchaseOrderRef string
	Notes            string

	Items      []*LineItem
	Commission decimal.Decimal

	CalendarEventID string

	SentToPlantAt         *time.Time
	PlantReminderAt       *time.Time
	LogisticsReminderAt   *time.Time
	LogisticsReminderFrom Status

	SlotLabel string
	SlotAt    *time.Time

	DeliveryNoteGenerated bool
	LabelGenerated        bool
	SealedDocsReceived    bool

	ActualDeliveryDate       *time.Time
	InvoiceRegisteredAt      *time.Time
	ExpectedPaymentProofDate *time.Time
	PaymentProofReceivedAt   *time.Time
	ExpectedChargeDate       *time.Time

	Month int
	Year  int
}

// RestoreOrder rebuilds an aggregate from persistence. It revalidates
// identity and status but accepts historical field combinations as-is; the
// total is recomputed from the items to re-establish the invariant.
func RestoreOrder(p RestoreParams) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:                       p.ID,
		number:                   p.Number,
		status:                   p.Status,
		receivedAt:               p.ReceivedAt,
		deliveryDate:             p.DeliveryDate,
		deliveryTime:             p.DeliveryTime,
		billingClient:            p.BillingClient,
		recipient:                p.Recipient,
		deliveryAddress:          p.DeliveryAddress,
		deliveryPlace:            p.DeliveryPlace,
		sourceEmail:              p.SourceEmail,
		sourceMessageID:          p.SourceMessageID,
		purchaseOrderRef:         p.PurchaseOrderRef,
		notes:                    p.Notes,
		items:                    p.Items,
		commission:               p.Commission,
		calendarEventID:          p.CalendarEventID,
		sentToPlantAt:            p.SentToPlantAt,
		plantReminderAt:          p.PlantReminderAt,
		logisticsReminderAt:      p.LogisticsReminderAt,
		logisticsReminderFrom:    p.LogisticsReminderFrom,
		slotLabel:                p.SlotLabel,
		slotAt:                   p.SlotAt,
		deliveryNoteGenerated:    p.DeliveryNoteGenerated,
		labelGenerated:           p.LabelGenerated,
		sealedDocsReceived:       p.SealedDocsReceived,
		actualDeliveryDate:       p.ActualDeliveryDate,
		invoiceRegisteredAt:      p.InvoiceRegisteredAt,
		expectedPaymentProofDate: p.ExpectedPaymentProofDate,
		paymentProofReceivedAt:   p.PaymentProofReceivedAt,
		expectedChargeDate:       p.ExpectedChargeDate,
		month:                    p.Month,
		year:                     p.Year,
		isConstructed:            true,
	}
	o.recomputeTotal()
	return o, nil
}

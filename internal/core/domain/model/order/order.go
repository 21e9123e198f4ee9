package order

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// commissionRate is the fixed commission applied at charge time (8%).
var commissionRate = decimal.New(8, -2)

const (
	paymentProofTermDays = 30
	chargeTermDays       = 60
)

// Details carries the optional delivery and party fields an order may be
// created with. Everything here is best-effort extraction output and may be
// empty; the hard admission requirements (delivery date, items) are separate
// NewOrder parameters.
type Details struct {
	DeliveryTime     string
	BillingClient    string
	Recipient        string
	DeliveryAddress  string
	DeliveryPlace    string
	SourceEmail      string
	SourceMessageID  string
	PurchaseOrderRef string
	Notes            string
}

// Order is the aggregate root tracking one purchase request from receipt to
// payment collection. It is mutated only through its transition methods,
// which enforce the declared lifecycle, and it is never deleted: terminal
// orders are retained for reporting.
//
// Invariants:
//   - total always equals the sum of the current line-item subtotals
//   - the status only changes along declared transitions
//   - there is at least one line item and a delivery date
type Order struct {
	id     kernel.UUID
	number string
	status Status

	receivedAt   time.Time
	deliveryDate time.Time
	deliveryTime string

	billingClient    string
	recipient        string
	deliveryAddress  string
	deliveryPlace    string
	sourceEmail      string
	sourceMessageID  string
	purchaseOrderRef string
	notes            string

	items      []*LineItem
	total      decimal.Decimal
	commission decimal.Decimal

	calendarEventID string

	sentToPlantAt         *time.Time
	plantReminderAt       *time.Time
	logisticsReminderAt   *time.Time
	logisticsReminderFrom Status

	slotLabel string
	slotAt    *time.Time

	deliveryNoteGenerated bool
	labelGenerated        bool
	sealedDocsReceived    bool

	actualDeliveryDate       *time.Time
	invoiceRegisteredAt      *time.Time
	expectedPaymentProofDate *time.Time
	paymentProofReceivedAt   *time.Time
	expectedChargeDate       *time.Time

	month int
	year  int

	isConstructed bool
}

// NewOrder creates an order in Received status. The delivery date and at
// least one line item are mandatory; they are the admission gate the
// validator enforces before calling this.
func NewOrder(
	id kernel.UUID,
	number string,
	receivedAt time.Time,
	deliveryDate time.Time,
	items []*LineItem,
	details Details,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if deliveryDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("delivery date")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("line items")
	}

	o := &Order{
		id:               id,
		number:           number,
		status:           Received,
		receivedAt:       receivedAt,
		deliveryDate:     deliveryDate,
		deliveryTime:     details.DeliveryTime,
		billingClient:    details.BillingClient,
		recipient:        details.Recipient,
		deliveryAddress:  details.DeliveryAddress,
		deliveryPlace:    details.DeliveryPlace,
		sourceEmail:      details.SourceEmail,
		sourceMessageID:  details.SourceMessageID,
		purchaseOrderRef: details.PurchaseOrderRef,
		notes:            details.Notes,
		items:            items,
		month:            int(receivedAt.Month()),
		year:             receivedAt.Year(),
		isConstructed:    true,
	}
	o.recomputeTotal()
	return o, nil
}

// Validate ensures the Order was created through a constructor. Called when
// reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// recomputeTotal keeps the total invariant: sum of current item subtotals.
func (o *Order) recomputeTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total
}

// recomputeCommission applies the fixed 8% rate to the current total.
func (o *Order) recomputeCommission() {
	o.commission = o.total.Mul(commissionRate)
}

// AttachCalendarEvent stores the external calendar event id and advances
// Received -> CalendarCreated.
func (o *Order) AttachCalendarEvent(eventID string) error {
	if eventID == "" {
		return errs.NewValueIsRequiredError("calendar event id")
	}
	newStatus, err := o.status.TransitionTo(CalendarCreated)
	if err != nil {
		return err
	}
	o.calendarEventID = eventID
	o.status = newStatus
	return nil
}

// MarkSentToPlant stamps the plant notification time and advances
// CalendarCreated -> SentToPlant.
func (o *Order) MarkSentToPlant(at time.Time) error {
	newStatus, err := o.status.TransitionTo(SentToPlant)
	if err != nil {
		return err
	}
	o.sentToPlantAt = &at
	o.status = newStatus
	return nil
}

// MarkPlantReminderSent stamps the reminder time and advances
// SentToPlant -> PlantReminderSent. The stamp doubles as the idempotency
// guard of the plant-reminder sweep.
func (o *Order) MarkPlantReminderSent(at time.Time) error {
	newStatus, err := o.status.TransitionTo(PlantReminderSent)
	if err != nil {
		return err
	}
	o.plantReminderAt = &at
	o.status = newStatus
	return nil
}

// MarkInProduction advances to InProduction. No side effects.
func (o *Order) MarkInProduction() error {
	newStatus, err := o.status.TransitionTo(InProduction)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkLogisticsReminderSent stamps the logistics reminder time. Reachable
// from the three states the logistics sweep watches; the stamp is the
// sweep's idempotency guard. The state branched from is recorded so the
// order can only rejoin the chain at the stage that follows it.
func (o *Order) MarkLogisticsReminderSent(at time.Time) error {
	from := o.status
	newStatus, err := o.status.TransitionTo(LogisticsReminderSent)
	if err != nil {
		return err
	}
	o.logisticsReminderAt = &at
	o.logisticsReminderFrom = from
	o.status = newStatus
	return nil
}

// rejoinGuard rejects moves out of LogisticsReminderSent to any stage other
// than the one following the state the reminder branched from. The workflow
// is forward-only; without this check an order reminded in SlotConfirmed
// could hop back to SlotRequested.
func (o *Order) rejoinGuard(target Status) error {
	if o.status != LogisticsReminderSent {
		return nil
	}
	rejoin := rejoinAfterLogisticsReminder(o.logisticsReminderFrom)
	if target == rejoin {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status transition",
		fmt.Errorf("reminder branched from %s; only %s may follow, not %s",
			o.logisticsReminderFrom, rejoin, target))
}

// MarkSlotRequested advances to SlotRequested.
func (o *Order) MarkSlotRequested() error {
	if err := o.rejoinGuard(SlotRequested); err != nil {
		return err
	}
	newStatus, err := o.status.TransitionTo(SlotRequested)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ConfirmSlot records the partner-assigned slot label and timestamp and
// advances SlotRequested -> SlotConfirmed.
func (o *Order) ConfirmSlot(label string, at time.Time) error {
	if label == "" {
		return errs.NewValueIsRequiredError("slot label")
	}
	newStatus, err := o.status.TransitionTo(SlotConfirmed)
	if err != nil {
		return err
	}
	o.slotLabel = label
	o.slotAt = &at
	o.status = newStatus
	return nil
}

// MarkReadyForDelivery sets the delivery-note and regulatory-label flags and
// advances to ReadyForDelivery.
func (o *Order) MarkReadyForDelivery() error {
	if err := o.rejoinGuard(ReadyForDelivery); err != nil {
		return err
	}
	newStatus, err := o.status.TransitionTo(ReadyForDelivery)
	if err != nil {
		return err
	}
	o.deliveryNoteGenerated = true
	o.labelGenerated = true
	o.status = newStatus
	return nil
}

// MarkDelivered records the actual delivery date, derives the expected
// payment-proof date (delivery + 30 days) and advances to Delivered.
func (o *Order) MarkDelivered(actualDate time.Time) error {
	if actualDate.IsZero() {
		return errs.NewValueIsRequiredError("actual delivery date")
	}
	if err := o.rejoinGuard(Delivered); err != nil {
		return err
	}
	newStatus, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}
	expected := actualDate.AddDate(0, 0, paymentProofTermDays)
	o.actualDeliveryDate = &actualDate
	o.expectedPaymentProofDate = &expected
	o.status = newStatus
	return nil
}

// MarkDocumentsReceived sets the sealed-documents flag and advances to
// DocumentsReceived.
func (o *Order) MarkDocumentsReceived() error {
	newStatus, err := o.status.TransitionTo(DocumentsReceived)
	if err != nil {
		return err
	}
	o.sealedDocsReceived = true
	o.status = newStatus
	return nil
}

// MarkInvoiceRegistered records the invoice registration date and advances
// to InvoiceRegistered.
func (o *Order) MarkInvoiceRegistered(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("invoice registration date")
	}
	newStatus, err := o.status.TransitionTo(InvoiceRegistered)
	if err != nil {
		return err
	}
	o.invoiceRegisteredAt = &date
	o.status = newStatus
	return nil
}

// MarkAwaitingPaymentProof advances InvoiceRegistered -> AwaitingPaymentProof.
// Entered by the payment sweep once the expected payment-proof date passes.
func (o *Order) MarkAwaitingPaymentProof() error {
	newStatus, err := o.status.TransitionTo(AwaitingPaymentProof)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkPaymentProofReceived records the receipt date and, when an actual
// delivery date exists, derives the expected-charge date as delivery + 60
// days. The charge term is delivery-relative by commercial agreement, not
// relative to the proof receipt.
func (o *Order) MarkPaymentProofReceived(receiptDate time.Time) error {
	if receiptDate.IsZero() {
		return errs.NewValueIsRequiredError("payment proof receipt date")
	}
	newStatus, err := o.status.TransitionTo(PaymentProofReceived)
	if err != nil {
		return err
	}
	o.paymentProofReceivedAt = &receiptDate
	if o.actualDeliveryDate != nil {
		expected := o.actualDeliveryDate.AddDate(0, 0, chargeTermDays)
		o.expectedChargeDate = &expected
	}
	o.status = newStatus
	return nil
}

// MarkCharged computes the commission and advances to Charged.
func (o *Order) MarkCharged() error {
	newStatus, err := o.status.TransitionTo(Charged)
	if err != nil {
		return err
	}
	o.recomputeCommission()
	o.status = newStatus
	return nil
}

// Finalize moves the order into its terminal state.
func (o *Order) Finalize() error {
	newStatus, err := o.status.TransitionTo(Finalized)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ID returns the order identity.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-readable order number (PED-YYYY-MM-NNNNN).
func (o *Order) Number() string { return o.number }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// ReceivedAt returns the creation timestamp.
func (o *Order) ReceivedAt() time.Time { return o.receivedAt }

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() time.Time { return o.deliveryDate }

// DeliveryTime returns the requested delivery time window start ("HH:MM"),
// empty when none was extracted.
func (o *Order) DeliveryTime() string { return o.deliveryTime }

// BillingClient returns the client the invoice goes to.
func (o *Order) BillingClient() string { return o.billingClient }

// Recipient returns the delivery recipient.
func (o *Order) Recipient() string { return o.recipient }

// DeliveryAddress returns the delivery street address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// DeliveryPlace returns the delivery location label.
func (o *Order) DeliveryPlace() string { return o.deliveryPlace }

// SourceEmail returns the originating mailbox address.
func (o *Order) SourceEmail() string { return o.sourceEmail }

// SourceMessageID returns the source-message identifier used for
// deduplication on re-ingestion, empty for manual submissions.
func (o *Order) SourceMessageID() string { return o.sourceMessageID }

// PurchaseOrderRef returns the opportunistically extracted "OC" reference.
func (o *Order) PurchaseOrderRef() string { return o.purchaseOrderRef }

// Notes returns the free-text notes.
func (o *Order) Notes() string { return o.notes }

// Items returns the ordered line items.
func (o *Order) Items() []*LineItem { return o.items }

// Total returns the sum of line-item subtotals.
func (o *Order) Total() decimal.Decimal { return o.total }

// Commission returns the commission, zero until the order is charged.
func (o *Order) Commission() decimal.Decimal { return o.commission }

// CalendarEventID returns the external calendar event id, empty before
// CalendarCreated.
func (o *Order) CalendarEventID() string { return o.calendarEventID }

// SentToPlantAt returns when the plant notification went out.
func (o *Order) SentToPlantAt() *time.Time { return o.sentToPlantAt }

// PlantReminderAt returns when the plant reminder went out.
func (o *Order) PlantReminderAt() *time.Time { return o.plantReminderAt }

// LogisticsReminderAt returns when the logistics reminder went out.
func (o *Order) LogisticsReminderAt() *time.Time { return o.logisticsReminderAt }

// LogisticsReminderFrom returns the state the logistics reminder branched
// from, or Unknown when no reminder went out.
func (o *Order) LogisticsReminderFrom() Status { return o.logisticsReminderFrom }

// SlotLabel returns the partner-assigned delivery slot label.
func (o *Order) SlotLabel() string { return o.slotLabel }

// SlotAt returns the partner-assigned slot timestamp.
func (o *Order) SlotAt() *time.Time { return o.slotAt }

// DeliveryNoteGenerated reports whether the delivery note exists.
func (o *Order) DeliveryNoteGenerated() bool { return o.deliveryNoteGenerated }

// LabelGenerated reports whether the regulatory label exists.
func (o *Order) LabelGenerated() bool { return o.labelGenerated }

// SealedDocsReceived reports whether the sealed documents came back.
func (o *Order) SealedDocsReceived() bool { return o.sealedDocsReceived }

// ActualDeliveryDate returns the real delivery date once delivered.
func (o *Order) ActualDeliveryDate() *time.Time { return o.actualDeliveryDate }

// InvoiceRegisteredAt returns the invoice registration date.
func (o *Order) InvoiceRegisteredAt() *time.Time { return o.invoiceRegisteredAt }

// ExpectedPaymentProofDate returns delivery + 30 days, set at delivery.
func (o *Order) ExpectedPaymentProofDate() *time.Time { return o.expectedPaymentProofDate }

// PaymentProofReceivedAt returns when the payment proof arrived.
func (o *Order) PaymentProofReceivedAt() *time.Time { return o.paymentProofReceivedAt }

// ExpectedChargeDate returns delivery + 60 days, set at proof receipt.
func (o *Order) ExpectedChargeDate() *time.Time { return o.expectedChargeDate }

// Month returns the creation month, kept for reporting.
func (o *Order) Month() int { return o.month }

// Year returns the creation year, kept for reporting.
func (o *Order) Year() int { return o.year }

package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status represents the lifecycle stage of an order. The workflow is strictly
// forward-only: no state is ever revisited, and Finalized is terminal.
//
// The two reminder states (PlantReminderSent, LogisticsReminderSent) are
// optional side branches recorded by the reminder sweeps; conceptually the
// order is still awaiting the same counterpart, so the branch rejoins the
// main chain at the next regular stage. Commission calculation is folded
// into the Charged transition.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status: the order was admitted from a
	// document or a manual submission.
	Received

	// CalendarCreated means the delivery event exists in the calendar.
	CalendarCreated

	// SentToPlant means the manufacturing contact was notified.
	SentToPlant

	// PlantReminderSent records that the plant was reminded after 24 hours
	// without response. The order is conceptually still awaiting the plant.
	PlantReminderSent

	// InProduction means the plant confirmed and manufacturing started.
	InProduction

	// LogisticsReminderSent records the 48-hours-before-delivery reminder.
	LogisticsReminderSent

	// SlotRequested means a delivery slot was requested from the partner.
	SlotRequested

	// SlotConfirmed means the partner assigned a slot.
	SlotConfirmed

	// ReadyForDelivery means delivery note and regulatory label exist.
	ReadyForDelivery

	// Delivered means the goods arrived; the actual delivery date is set.
	Delivered

	// DocumentsReceived means the sealed delivery documents came back.
	DocumentsReceived

	// InvoiceRegistered means the invoice was registered with the client.
	InvoiceRegistered

	// AwaitingPaymentProof is the nagging sub-state entered when the
	// expected payment-proof date passes without a proof.
	AwaitingPaymentProof

	// PaymentProofReceived means the payment proof arrived.
	PaymentProofReceived

	// Charged means payment was collected and the commission computed.
	Charged

	// Finalized is the terminal state; the order is kept for reporting.
	Finalized
)

// statusStrings maps every Status, valid or not, to its display name.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:               "Unknown",
		Received:              "Received",
		CalendarCreated:       "CalendarCreated",
		SentToPlant:           "SentToPlant",
		PlantReminderSent:     "PlantReminderSent",
		InProduction:          "InProduction",
		LogisticsReminderSent: "LogisticsReminderSent",
		SlotRequested:         "SlotRequested",
		SlotConfirmed:         "SlotConfirmed",
		ReadyForDelivery:      "ReadyForDelivery",
		Delivered:             "Delivered",
		DocumentsReceived:     "DocumentsReceived",
		InvoiceRegistered:     "InvoiceRegistered",
		AwaitingPaymentProof:  "AwaitingPaymentProof",
		PaymentProofReceived:  "PaymentProofReceived",
		Charged:               "Charged",
		Finalized:             "Finalized",
	}
}

// statusDescriptions carries the human-readable report label for each state.
func statusDescriptions() map[Status]string {
	return map[Status]string{
		Received:              "Order received",
		CalendarCreated:       "Added to calendar",
		SentToPlant:           "Sent to plant",
		PlantReminderSent:     "Plant reminder sent",
		InProduction:          "In production",
		LogisticsReminderSent: "Logistics reminder sent (48h before delivery)",
		SlotRequested:         "Delivery slot requested",
		SlotConfirmed:         "Delivery slot confirmed",
		ReadyForDelivery:      "Ready for delivery (note and label generated)",
		Delivered:             "Delivered",
		DocumentsReceived:     "Sealed documents received",
		InvoiceRegistered:     "Invoice registered",
		AwaitingPaymentProof:  "Awaiting payment proof (30 days after delivery)",
		PaymentProofReceived:  "Payment proof received",
		Charged:               "Charged (commission calculated)",
		Finalized:             "Finalized",
	}
}

// transitions declares the complete set of legal (from, to) pairs.
// Anything not listed here is a precondition violation.
//
// LogisticsReminderSent can be entered from any of the three states the
// logistics sweep watches, and rejoins the chain at whichever regular stage
// follows the state the order was actually in.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Received:              {CalendarCreated},
		CalendarCreated:       {SentToPlant},
		SentToPlant:           {PlantReminderSent, InProduction},
		PlantReminderSent:     {InProduction},
		InProduction:          {LogisticsReminderSent, SlotRequested},
		LogisticsReminderSent: {SlotRequested, ReadyForDelivery, Delivered},
		SlotRequested:         {SlotConfirmed},
		SlotConfirmed:         {LogisticsReminderSent, ReadyForDelivery},
		ReadyForDelivery:      {LogisticsReminderSent, Delivered},
		Delivered:             {DocumentsReceived},
		DocumentsReceived:     {InvoiceRegistered},
		InvoiceRegistered:     {AwaitingPaymentProof, PaymentProofReceived},
		AwaitingPaymentProof:  {PaymentProofReceived},
		PaymentProofReceived:  {Charged},
		Charged:               {Finalized},
		Finalized:             {},
	}
}

// rejoinAfterLogisticsReminder maps the state a logistics reminder branched
// from to the single stage the order may rejoin at. The transition table
// lists all three rejoin targets; which one is legal for a given order
// depends on where that order branched, which only the aggregate knows.
func rejoinAfterLogisticsReminder(from Status) Status {
	switch from {
	case SlotConfirmed:
		return ReadyForDelivery
	case ReadyForDelivery:
		return Delivered
	default:
		return SlotRequested
	}
}

// AllStatuses returns every valid status in workflow order.
// Used by the daily report to enumerate states deterministically.
func AllStatuses() []Status {
	return []Status{
		Received, CalendarCreated, SentToPlant, PlantReminderSent,
		InProduction, LogisticsReminderSent, SlotRequested, SlotConfirmed,
		ReadyForDelivery, Delivered, DocumentsReceived, InvoiceRegistered,
		AwaitingPaymentProof, PaymentProofReceived, Charged, Finalized,
	}
}

// Validate checks that the Status is one of the declared lifecycle states.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; unknown values render as "Unknown".
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Description returns the report label for the status.
func (s Status) Description() string {
	if d, ok := statusDescriptions()[s]; ok {
		return d
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == Finalized
}

// CanTransitionTo checks the declared transition table without side effects.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	for _, next := range transitions()[s] {
		if next == target {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status transition",
		fmt.Errorf("cannot move from %s to %s", s, target))
}

// TransitionTo returns the target status if the move is declared legal.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, err
	}
	return target, nil
}

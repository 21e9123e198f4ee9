package commands

import (
	"context"
	"fmt"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// CreateCalendarEntryCommandHandler schedules the delivery on the shared
// calendar and advances the order to CalendarCreated, storing the event
// id for later updates.
type CreateCalendarEntryCommandHandler struct {
	uowFactory OrderUoWFactory
	calendar   ports.Calendar
}

func NewCreateCalendarEntryCommandHandler(
	uowFactory OrderUoWFactory,
	calendar ports.Calendar,
) CreateCalendarEntryCommandHandler {
	return CreateCalendarEntryCommandHandler{
		uowFactory: uowFactory,
		calendar:   calendar,
	}
}

// Handle checks the transition is legal before touching the calendar, so
// no stray event is created for an order in the wrong status.
func (h *CreateCalendarEntryCommandHandler) Handle(ctx context.Context, cmd CreateCalendarEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Status().CanTransitionTo(order.CalendarCreated); err != nil {
		return err
	}

	eventID, err := h.calendar.CreateDeliveryEvent(ctx, ports.DeliveryEvent{
		OrderNumber: aggregate.Number(),
		Date:        aggregate.DeliveryDate(),
		Place:       eventPlace(aggregate),
		Details:     calendarEventDetails(aggregate),
	})
	if err != nil {
		return errs.NewExternalDependencyError("calendar", "create delivery event", err)
	}

	if err = aggregate.AttachCalendarEvent(eventID); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func eventPlace(o *order.Order) string {
	if o.DeliveryAddress() != "" {
		return o.DeliveryAddress()
	}
	return o.DeliveryPlace()
}

func calendarEventDetails(o *order.Order) string {
	deliveryTime := o.DeliveryTime()
	if deliveryTime == "" {
		deliveryTime = "A confirmar"
	}

	return fmt.Sprintf(
		"Pedido: %s\n"+
			"Cliente Facturación: %s\n"+
			"Destinatario Entrega: %s\n"+
			"Dirección: %s\n"+
			"Horario: %s\n"+
			"Total: $%s\n\n"+
			"Recordar:\n"+
			"- Solicitar turno al centro de distribución\n"+
			"- Preparar Remito\n"+
			"- Preparar Etiqueta RNPA",
		o.Number(),
		orNA(o.BillingClient()),
		orNA(o.Recipient()),
		eventPlace(o),
		deliveryTime,
		o.Total().StringFixed(2))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

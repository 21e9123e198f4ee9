package commands

import (
	"context"

	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// ConfirmSlotCommandHandler records a confirmed delivery slot and appends
// it to the calendar event's description so the people on the road see
// it. Orders created manually may have no calendar event; the calendar
// update is skipped then.
type ConfirmSlotCommandHandler struct {
	uowFactory OrderUoWFactory
	calendar   ports.Calendar
}

func NewConfirmSlotCommandHandler(
	uowFactory OrderUoWFactory,
	calendar ports.Calendar,
) ConfirmSlotCommandHandler {
	return ConfirmSlotCommandHandler{
		uowFactory: uowFactory,
		calendar:   calendar,
	}
}

// Handle applies the transition, updates the calendar event if one is
// attached, and commits.
func (h *ConfirmSlotCommandHandler) Handle(ctx context.Context, cmd ConfirmSlotCommand) error {
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

	if err = aggregate.ConfirmSlot(cmd.Label(), cmd.SlotAt()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if eventID := aggregate.CalendarEventID(); eventID != "" {
		description := calendarEventDetails(aggregate) + "\n\nTurno confirmado: " + cmd.Label()
		if err = h.calendar.UpdateEventDescription(ctx, eventID, description); err != nil {
			return errs.NewExternalDependencyError("calendar", "update delivery event", err)
		}
	}

	return uow.Commit(ctx)
}

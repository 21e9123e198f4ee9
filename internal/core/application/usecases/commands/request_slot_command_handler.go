package commands

import (
	"context"

	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// RequestSlotCommandHandler advances an order to SlotRequested and emails
// the distribution center for a delivery slot. A failed send rolls the
// transition back.
type RequestSlotCommandHandler struct {
	uowFactory OrderUoWFactory
	mailbox    ports.Mailbox
	recipients Recipients
}

func NewRequestSlotCommandHandler(
	uowFactory OrderUoWFactory,
	mailbox ports.Mailbox,
	recipients Recipients,
) RequestSlotCommandHandler {
	return RequestSlotCommandHandler{
		uowFactory: uowFactory,
		mailbox:    mailbox,
		recipients: recipients,
	}
}

// Handle applies the transition, sends the slot request, and commits.
func (h *RequestSlotCommandHandler) Handle(ctx context.Context, cmd RequestSlotCommand) error {
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

	if err = aggregate.MarkSlotRequested(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.mailbox.Send(ctx,
		h.recipients.SlotPartner, slotRequestSubject(aggregate), slotRequestBody(aggregate)); err != nil {
		return errs.NewExternalDependencyError("mailbox", "send slot request", err)
	}

	return uow.Commit(ctx)
}

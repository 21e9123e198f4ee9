package commands

import (
	"context"

	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// SendToPlantCommandHandler dispatches an order to the manufacturing
// plant: it advances the order to SentToPlant and emails the plant the
// order sheet. A failed send rolls the transition back so the same
// dispatch can be retried later.
type SendToPlantCommandHandler struct {
	uowFactory OrderUoWFactory
	mailbox    ports.Mailbox
	recipients Recipients
}

func NewSendToPlantCommandHandler(
	uowFactory OrderUoWFactory,
	mailbox ports.Mailbox,
	recipients Recipients,
) SendToPlantCommandHandler {
	return SendToPlantCommandHandler{
		uowFactory: uowFactory,
		mailbox:    mailbox,
		recipients: recipients,
	}
}

// Handle applies the transition first, so an order in the wrong status
// fails before any email goes out, then sends the notification and
// commits.
func (h *SendToPlantCommandHandler) Handle(ctx context.Context, cmd SendToPlantCommand) error {
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

	if err = aggregate.MarkSentToPlant(cmd.SentAt()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.mailbox.Send(ctx,
		h.recipients.Plant, plantDispatchSubject(aggregate), plantDispatchBody(aggregate)); err != nil {
		return errs.NewExternalDependencyError("mailbox", "send plant notification", err)
	}

	return uow.Commit(ctx)
}

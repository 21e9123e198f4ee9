package commands

import (
	"context"
	"log/slog"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// logisticsLeadDays is how many days before the delivery date the
// logistics reminder goes out.
const logisticsLeadDays = 2

// SendLogisticsRemindersHandler drives one logistics-reminder sweep over
// orders delivering in two days. The same per-order claim transaction as
// the plant sweep keeps reminders from doubling up.
type SendLogisticsRemindersHandler struct {
	uowFactory OrderUoWFactory
	mailbox    ports.Mailbox
	recipients Recipients
	logger     *slog.Logger
	now        func() time.Time
}

func NewSendLogisticsRemindersHandler(
	uowFactory OrderUoWFactory,
	mailbox ports.Mailbox,
	recipients Recipients,
	logger *slog.Logger,
) *SendLogisticsRemindersHandler {
	return &SendLogisticsRemindersHandler{
		uowFactory: uowFactory,
		mailbox:    mailbox,
		recipients: recipients,
		logger:     logger.With("component", "logistics_reminders"),
		now:        time.Now,
	}
}

// Handle runs one sweep. A single failing order never stops the rest of
// the batch.
func (h *SendLogisticsRemindersHandler) Handle(ctx context.Context) error {
	today := h.now()
	deliveryDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, logisticsLeadDays)

	ids, err := h.listDue(ctx, deliveryDate)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := h.remind(ctx, id); err != nil {
			h.logger.Error("logistics reminder failed", "order_id", id.String(), "error", err)
		}
	}

	return nil
}

func (h *SendLogisticsRemindersHandler) listDue(ctx context.Context, deliveryDate time.Time) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	due, err := uow.OrderRepository().GetAllDueForLogisticsReminder(ctx, deliveryDate)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(due))
	for _, aggregate := range due {
		ids = append(ids, aggregate.ID())
	}
	return ids, nil
}

func (h *SendLogisticsRemindersHandler) remind(ctx context.Context, id kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = aggregate.MarkLogisticsReminderSent(h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	// The stamp commits before the send: the window fires at most once,
	// even when the process dies right after a successful send.
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.mailbox.Send(ctx,
		h.recipients.Logistics, logisticsReminderSubject(aggregate), logisticsReminderBody(aggregate)); err != nil {
		return errs.NewExternalDependencyError("mailbox", "send logistics reminder", err)
	}

	h.logger.Info("logistics reminder sent", "order", aggregate.Number())
	return nil
}

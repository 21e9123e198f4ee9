package commands

import (
	"context"
	"log/slog"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// plantReminderAfter is how long an order may sit with the plant without
// an answer before it gets a reminder.
const plantReminderAfter = 24 * time.Hour

// SendPlantRemindersHandler drives one plant-reminder sweep. Each due
// order is claimed in its own transaction: the reminder stamp and status
// move are written before the email goes out and committed only after the
// send succeeded, so a second sweep finds either the stamp or the
// original state.
type SendPlantRemindersHandler struct {
	uowFactory OrderUoWFactory
	mailbox    ports.Mailbox
	recipients Recipients
	logger     *slog.Logger
	now        func() time.Time
}

func NewSendPlantRemindersHandler(
	uowFactory OrderUoWFactory,
	mailbox ports.Mailbox,
	recipients Recipients,
	logger *slog.Logger,
) *SendPlantRemindersHandler {
	return &SendPlantRemindersHandler{
		uowFactory: uowFactory,
		mailbox:    mailbox,
		recipients: recipients,
		logger:     logger.With("component", "plant_reminders"),
		now:        time.Now,
	}
}

// Handle runs one sweep. A single failing order never stops the rest of
// the batch.
func (h *SendPlantRemindersHandler) Handle(ctx context.Context) error {
	cutoff := h.now().Add(-plantReminderAfter)

	ids, err := h.listDue(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := h.remind(ctx, id); err != nil {
			h.logger.Error("plant reminder failed", "order_id", id.String(), "error", err)
		}
	}

	return nil
}

func (h *SendPlantRemindersHandler) listDue(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	due, err := uow.OrderRepository().GetAllDueForPlantReminder(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(due))
	for _, aggregate := range due {
		ids = append(ids, aggregate.ID())
	}
	return ids, nil
}

func (h *SendPlantRemindersHandler) remind(ctx context.Context, id kernel.UUID) error {
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

	// Re-checks the claim under the transaction: an order another sweep
	// already reminded fails the transition here and is skipped.
	if err = aggregate.MarkPlantReminderSent(h.now()); err != nil {
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
		h.recipients.Plant, plantReminderSubject(aggregate), plantReminderBody(aggregate)); err != nil {
		return errs.NewExternalDependencyError("mailbox", "send plant reminder", err)
	}

	h.logger.Info("plant reminder sent", "order", aggregate.Number())
	return nil
}

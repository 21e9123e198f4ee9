package commands

import (
	"context"
	"log/slog"
	"time"

	"pedidos/internal/core/domain/model/kernel"
)

// FlagAwaitingPaymentProofHandler drives the daily payment sweep: orders
// whose expected payment-proof date has passed without a proof arriving
// are flagged as AwaitingPaymentProof so they show up in follow-up
// reports.
type FlagAwaitingPaymentProofHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

func NewFlagAwaitingPaymentProofHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) *FlagAwaitingPaymentProofHandler {
	return &FlagAwaitingPaymentProofHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "payment_proof_sweep"),
		now:        time.Now,
	}
}

// Handle runs one sweep. A single failing order never stops the rest of
// the batch.
func (h *FlagAwaitingPaymentProofHandler) Handle(ctx context.Context) error {
	today := h.now()
	asOf := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	ids, err := h.listOverdue(ctx, asOf)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := h.flag(ctx, id); err != nil {
			h.logger.Error("payment proof flag failed", "order_id", id.String(), "error", err)
		}
	}

	return nil
}

func (h *FlagAwaitingPaymentProofHandler) listOverdue(ctx context.Context, asOf time.Time) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	overdue, err := uow.OrderRepository().GetAllAwaitingPaymentProof(ctx, asOf)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(overdue))
	for _, aggregate := range overdue {
		h.logger.Info("payment proof overdue",
			"order", aggregate.Number(),
			"delivered", aggregate.ActualDeliveryDate(),
			"expected", aggregate.ExpectedPaymentProofDate())
		ids = append(ids, aggregate.ID())
	}
	return ids, nil
}

func (h *FlagAwaitingPaymentProofHandler) flag(ctx context.Context, id kernel.UUID) error {
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

	if err = aggregate.MarkAwaitingPaymentProof(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// MarkChargedCommandHandler advances an order to Charged and fixes the sales commission.
type MarkChargedCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkChargedCommandHandler(uowFactory OrderUoWFactory) MarkChargedCommandHandler {
	return MarkChargedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition, and persists the result.
// The transition fails with a precondition error if the order's current
// status does not allow it, leaving the order unchanged.
func (h *MarkChargedCommandHandler) Handle(ctx context.Context, cmd MarkChargedCommand) error {
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

	if err = aggregate.MarkCharged(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

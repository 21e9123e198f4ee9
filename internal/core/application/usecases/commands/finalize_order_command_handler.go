package commands

import (
	"context"
)

// FinalizeOrderCommandHandler moves an order to its terminal Finalized status. The order is kept for reporting, never deleted.
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewFinalizeOrderCommandHandler(uowFactory OrderUoWFactory) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition, and persists the result.
// The transition fails with a precondition error if the order's current
// status does not allow it, leaving the order unchanged.
func (h *FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) error {
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

	if err = aggregate.Finalize(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

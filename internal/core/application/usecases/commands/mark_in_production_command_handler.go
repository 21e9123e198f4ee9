package commands

import (
	"context"
)

// MarkInProductionCommandHandler advances an order to InProduction once the plant confirms.
type MarkInProductionCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkInProductionCommandHandler(uowFactory OrderUoWFactory) MarkInProductionCommandHandler {
	return MarkInProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition, and persists the result.
// The transition fails with a precondition error if the order's current
// status does not allow it, leaving the order unchanged.
func (h *MarkInProductionCommandHandler) Handle(ctx context.Context, cmd MarkInProductionCommand) error {
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

	if err = aggregate.MarkInProduction(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

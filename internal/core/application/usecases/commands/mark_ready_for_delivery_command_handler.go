package commands

import (
	"context"
)

// MarkReadyForDeliveryCommandHandler advances an order to ReadyForDelivery.
type MarkReadyForDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkReadyForDeliveryCommandHandler(uowFactory OrderUoWFactory) MarkReadyForDeliveryCommandHandler {
	return MarkReadyForDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition, and persists the result.
// The transition fails with a precondition error if the order's current
// status does not allow it, leaving the order unchanged.
func (h *MarkReadyForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkReadyForDeliveryCommand) error {
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

	if err = aggregate.MarkReadyForDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

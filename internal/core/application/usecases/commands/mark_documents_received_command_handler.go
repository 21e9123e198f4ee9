package commands

import (
	"context"
)

// MarkDocumentsReceivedCommandHandler advances an order to DocumentsReceived.
type MarkDocumentsReceivedCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkDocumentsReceivedCommandHandler(uowFactory OrderUoWFactory) MarkDocumentsReceivedCommandHandler {
	return MarkDocumentsReceivedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition, and persists the result.
// The transition fails with a precondition error if the order's current
// status does not allow it, leaving the order unchanged.
func (h *MarkDocumentsReceivedCommandHandler) Handle(ctx context.Context, cmd MarkDocumentsReceivedCommand) error {
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

	if err = aggregate.MarkDocumentsReceived(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

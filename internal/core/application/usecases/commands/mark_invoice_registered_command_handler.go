package commands

import (
	"context"
)

// MarkInvoiceRegisteredCommandHandler advances an order to InvoiceRegistered.
type MarkInvoiceRegisteredCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkInvoiceRegisteredCommandHandler(uowFactory OrderUoWFactory) MarkInvoiceRegisteredCommandHandler {
	return MarkInvoiceRegisteredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition, and persists the result.
func (h *MarkInvoiceRegisteredCommandHandler) Handle(ctx context.Context, cmd MarkInvoiceRegisteredCommand) error {
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

	if err = aggregate.MarkInvoiceRegistered(cmd.InvoiceDate()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// MarkPaymentProofReceivedCommandHandler advances an order to PaymentProofReceived and stamps the charge expectation.
type MarkPaymentProofReceivedCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkPaymentProofReceivedCommandHandler(uowFactory OrderUoWFactory) MarkPaymentProofReceivedCommandHandler {
	return MarkPaymentProofReceivedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition, and persists the result.
func (h *MarkPaymentProofReceivedCommandHandler) Handle(ctx context.Context, cmd MarkPaymentProofReceivedCommand) error {
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

	if err = aggregate.MarkPaymentProofReceived(cmd.ReceiptDate()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// ErrOrderAlreadyIngested signals that the source message of the command
// already produced an order. Re-ingestion of the same message must not
// create a duplicate; callers treat this as already processed.
var ErrOrderAlreadyIngested = errors.New("an order for this source message already exists")

// CreateOrderCommandHandler handles the business logic for order admission.
// Assigns the running order number and creates the order in Received status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order admission.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order admission command.
// Checks the source message for duplicates, numbers the order from the
// running sequence, and persists it in Received status. Uses a transaction
// to ensure the order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if messageID := cmd.Details().SourceMessageID; messageID != "" {
		existing, err := orderRepo.GetBySourceMessageID(ctx, messageID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if existing != nil {
			return ErrOrderAlreadyIngested
		}
	}

	items := make([]*order.LineItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewLineItem(input.Product, input.Quantity, input.UnitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	count, err := orderRepo.Count(ctx)
	if err != nil {
		return err
	}
	number := order.FormatNumber(cmd.ReceivedAt().Year(), int(cmd.ReceivedAt().Month()), count+1)

	aggregate, err := order.NewOrder(
		cmd.OrderID(), number, cmd.ReceivedAt(), cmd.DeliveryDate(), items, cmd.Details())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

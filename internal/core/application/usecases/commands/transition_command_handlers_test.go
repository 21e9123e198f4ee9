package commands_test

import (
	"errors"
	"testing"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendToPlantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, order.Details{DeliveryPlace: "Depósito Norte"})
	require.NoError(t, aggregate.AttachCalendarEvent("evt-1"))

	sentAt := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	cmd, err := commands.NewSendToPlantCommand(aggregate.ID(), sentAt)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	uow := new(MockOrderUoW)
	expectUoW(uow, repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mailbox := new(MockMailbox)
	mailbox.On("Send", mock.Anything, "planta@ejemplo.com",
		"Nuevo Pedido - PED-2025-06-00001", mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewSendToPlantCommandHandler(factory, mailbox,
		commands.Recipients{Plant: "planta@ejemplo.com"})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.SentToPlant, aggregate.Status())
	require.NotNil(t, aggregate.SentToPlantAt())
	assert.Equal(t, sentAt, *aggregate.SentToPlantAt())
	mailbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSendToPlantCommandHandler_Handle_SendFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, order.Details{})
	require.NoError(t, aggregate.AttachCalendarEvent("evt-1"))

	cmd, err := commands.NewSendToPlantCommand(aggregate.ID(), time.Now())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	uow := new(MockOrderUoW)
	expectUoW(uow, repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mailbox := new(MockMailbox)
	mailbox.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp unavailable")).Once()

	h := commands.NewSendToPlantCommandHandler(factory, mailbox, commands.Recipients{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrExternalDependency)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSendToPlantCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	// Still in Received; dispatch requires CalendarCreated first.
	aggregate := testOrder(t, order.Details{})

	cmd, err := commands.NewSendToPlantCommand(aggregate.ID(), time.Now())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	uow := new(MockOrderUoW)
	expectUoW(uow, repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mailbox := new(MockMailbox)

	h := commands.NewSendToPlantCommandHandler(factory, mailbox, commands.Recipients{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Received, aggregate.Status())
	mailbox.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCalendarEntryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, order.Details{DeliveryPlace: "Depósito Norte"})

	cmd, err := commands.NewCreateCalendarEntryCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	uow := new(MockOrderUoW)
	expectUoW(uow, repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	calendar := new(MockCalendar)
	calendar.On("CreateDeliveryEvent", mock.Anything, mock.MatchedBy(func(e ports.DeliveryEvent) bool {
		return e.OrderNumber == "PED-2025-06-00001" && e.Place == "Depósito Norte"
	})).Return("evt-9", nil).Once()

	h := commands.NewCreateCalendarEntryCommandHandler(factory, calendar)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.CalendarCreated, aggregate.Status())
	assert.Equal(t, "evt-9", aggregate.CalendarEventID())
}

func TestCreateCalendarEntryCommandHandler_Handle_WrongStatusSkipsCalendar(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, order.Details{})
	require.NoError(t, aggregate.AttachCalendarEvent("evt-1")) // already CalendarCreated

	cmd, err := commands.NewCreateCalendarEntryCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	uow := new(MockOrderUoW)
	expectUoW(uow, repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	calendar := new(MockCalendar)

	h := commands.NewCreateCalendarEntryCommandHandler(factory, calendar)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	calendar.AssertNotCalled(t, "CreateDeliveryEvent", mock.Anything, mock.Anything)
}

func TestConfirmSlotCommandHandler_Handle_UpdatesCalendarEvent(t *testing.T) {
	ctx := t.Context()
	aggregate := orderSentToPlant(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, aggregate.MarkInProduction())
	require.NoError(t, aggregate.MarkSlotRequested())

	slotAt := time.Date(2025, 6, 19, 14, 30, 0, 0, time.UTC)
	cmd, err := commands.NewConfirmSlotCommand(aggregate.ID(), "Turno 14:30", slotAt)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	uow := new(MockOrderUoW)
	expectUoW(uow, repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	calendar := new(MockCalendar)
	calendar.On("UpdateEventDescription", mock.Anything, "evt-1",
		mock.MatchedBy(func(description string) bool {
			return len(description) > 0
		})).Return(nil).Once()

	h := commands.NewConfirmSlotCommandHandler(factory, calendar)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.SlotConfirmed, aggregate.Status())
	assert.Equal(t, "Turno 14:30", aggregate.SlotLabel())
	calendar.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_StampsExpectedProofDate(t *testing.T) {
	ctx := t.Context()
	aggregate := orderSentToPlant(t, time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC))
	require.NoError(t, aggregate.MarkInProduction())
	require.NoError(t, aggregate.MarkSlotRequested())
	require.NoError(t, aggregate.ConfirmSlot("Turno 09:00", time.Date(2025, 5, 31, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, aggregate.MarkReadyForDelivery())

	deliveredOn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewMarkDeliveredCommand(aggregate.ID(), deliveredOn)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	uow := new(MockOrderUoW)
	expectUoW(uow, repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveredCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Delivered, aggregate.Status())
	require.NotNil(t, aggregate.ExpectedPaymentProofDate())
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), *aggregate.ExpectedPaymentProofDate())
}

func TestFinalizeOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, order.Details{})

	cmd, err := commands.NewFinalizeOrderCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).
		Return(nil, errs.NewObjectNotFoundError("order", aggregate.ID())).Once()

	uow := new(MockOrderUoW)
	expectUoW(uow, repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

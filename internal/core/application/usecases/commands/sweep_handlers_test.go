package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
	"pedidos/internal/extraction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func extractionExtractor() *extraction.Extractor {
	return extraction.NewExtractor(discardLogger())
}

func TestSendPlantRemindersHandler_Handle_SendsOneReminderPerOrder(t *testing.T) {
	ctx := t.Context()
	sentAt := time.Now().Add(-36 * time.Hour)
	aggregate := orderSentToPlant(t, sentAt)

	repo := new(MockOrderRepository)
	repo.On("GetAllDueForPlantReminder", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{aggregate}, nil).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	listUoW := new(MockOrderUoW)
	expectUoW(listUoW, repo)
	claimUoW := new(MockOrderUoW)
	expectUoW(claimUoW, repo)
	claimUoW.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(claimUoW).Once()

	mailbox := new(MockMailbox)
	mailbox.On("Send", mock.Anything, "planta@ejemplo.com",
		"RECORDATORIO - Pedido PED-2025-06-00001", mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewSendPlantRemindersHandler(factory, mailbox,
		commands.Recipients{Plant: "planta@ejemplo.com"}, discardLogger())
	require.NoError(t, h.Handle(ctx))

	assert.Equal(t, order.PlantReminderSent, aggregate.Status())
	assert.NotNil(t, aggregate.PlantReminderAt())
	mailbox.AssertExpectations(t)
	claimUoW.AssertExpectations(t)
}

func TestSendPlantRemindersHandler_Handle_SecondRunFindsStampAndSkips(t *testing.T) {
	ctx := t.Context()
	aggregate := orderSentToPlant(t, time.Now().Add(-36*time.Hour))
	require.NoError(t, aggregate.MarkPlantReminderSent(time.Now()))

	// The listing query raced an earlier sweep: the order comes back due
	// but is already stamped by the time it is re-read under the claim
	// transaction.
	repo := new(MockOrderRepository)
	repo.On("GetAllDueForPlantReminder", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{aggregate}, nil).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	listUoW := new(MockOrderUoW)
	expectUoW(listUoW, repo)
	claimUoW := new(MockOrderUoW)
	expectUoW(claimUoW, repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(claimUoW).Once()

	mailbox := new(MockMailbox)

	h := commands.NewSendPlantRemindersHandler(factory, mailbox, commands.Recipients{}, discardLogger())
	require.NoError(t, h.Handle(ctx))

	mailbox.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	claimUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSendPlantRemindersHandler_Handle_StampCommitsBeforeSend(t *testing.T) {
	ctx := t.Context()
	aggregate := orderSentToPlant(t, time.Now().Add(-36*time.Hour))

	repo := new(MockOrderRepository)
	repo.On("GetAllDueForPlantReminder", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{aggregate}, nil).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	listUoW := new(MockOrderUoW)
	expectUoW(listUoW, repo)
	claimUoW := new(MockOrderUoW)
	expectUoW(claimUoW, repo)

	committed := false
	claimUoW.On("Commit", mock.Anything).Run(func(mock.Arguments) {
		committed = true
	}).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(claimUoW).Once()

	// A failing send must not release the claim: the window fires at most
	// once, and the stamp is already durable when the send goes out.
	mailbox := new(MockMailbox)
	mailbox.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			assert.True(t, committed, "send went out before the claim was committed")
		}).
		Return(errors.New("smtp unavailable")).Once()

	h := commands.NewSendPlantRemindersHandler(factory, mailbox, commands.Recipients{}, discardLogger())
	require.NoError(t, h.Handle(ctx)) // per-order failures are absorbed

	claimUoW.AssertExpectations(t)
	assert.Equal(t, order.PlantReminderSent, aggregate.Status())
}

func TestSendLogisticsRemindersHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := orderSentToPlant(t, time.Now().Add(-48*time.Hour))
	require.NoError(t, aggregate.MarkInProduction())

	repo := new(MockOrderRepository)
	repo.On("GetAllDueForLogisticsReminder", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{aggregate}, nil).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	listUoW := new(MockOrderUoW)
	expectUoW(listUoW, repo)
	claimUoW := new(MockOrderUoW)
	expectUoW(claimUoW, repo)
	claimUoW.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(claimUoW).Once()

	mailbox := new(MockMailbox)
	mailbox.On("Send", mock.Anything, "logistica@ejemplo.com",
		"Recordatorio Logística - PED-2025-06-00001 - Entrega en 48hs",
		mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewSendLogisticsRemindersHandler(factory, mailbox,
		commands.Recipients{Logistics: "logistica@ejemplo.com"}, discardLogger())
	require.NoError(t, h.Handle(ctx))

	assert.Equal(t, order.LogisticsReminderSent, aggregate.Status())
	mailbox.AssertExpectations(t)
}

func TestFlagAwaitingPaymentProofHandler_Handle_FlagsOverdueOrders(t *testing.T) {
	ctx := t.Context()
	aggregate := orderSentToPlant(t, time.Now().AddDate(0, -3, 0))
	require.NoError(t, aggregate.MarkInProduction())
	require.NoError(t, aggregate.MarkSlotRequested())
	require.NoError(t, aggregate.ConfirmSlot("Turno 09:00", time.Now().AddDate(0, -2, 0)))
	require.NoError(t, aggregate.MarkReadyForDelivery())
	require.NoError(t, aggregate.MarkDelivered(time.Now().AddDate(0, -2, 0)))
	require.NoError(t, aggregate.MarkDocumentsReceived())
	require.NoError(t, aggregate.MarkInvoiceRegistered(time.Now().AddDate(0, -2, 3)))

	repo := new(MockOrderRepository)
	repo.On("GetAllAwaitingPaymentProof", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{aggregate}, nil).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	listUoW := new(MockOrderUoW)
	expectUoW(listUoW, repo)
	flagUoW := new(MockOrderUoW)
	expectUoW(flagUoW, repo)
	flagUoW.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(flagUoW).Once()

	h := commands.NewFlagAwaitingPaymentProofHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx))

	assert.Equal(t, order.AwaitingPaymentProof, aggregate.Status())
}

func TestProcessInboundDocumentsHandler_Handle_RejectedDocumentIsMarkedRead(t *testing.T) {
	ctx := t.Context()

	mailbox := new(MockMailbox)
	mailbox.On("GetUnreadMessages", mock.Anything, "is:unread subject:pedido").
		Return([]ports.MessageRef{{ID: "msg-9"}}, nil).Once()
	mailbox.On("GetMessage", mock.Anything, "msg-9").
		Return(&ports.Message{ID: "msg-9", From: "x@y.com", Body: "sin pedido adentro"}, nil).Once()
	mailbox.On("MarkRead", mock.Anything, "msg-9").Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	h := newIngestHandler(t, mailbox, new(MockPDFTextExtractor), factory, new(MockCalendar))
	require.NoError(t, h.Handle(ctx))

	mailbox.AssertExpectations(t)
	factory.AssertNotCalled(t, "Create")
}

func TestProcessInboundDocumentsHandler_Handle_FetchFailureLeavesMessageUnread(t *testing.T) {
	ctx := t.Context()

	mailbox := new(MockMailbox)
	mailbox.On("GetUnreadMessages", mock.Anything, "is:unread subject:pedido").
		Return([]ports.MessageRef{{ID: "msg-9"}}, nil).Once()
	mailbox.On("GetMessage", mock.Anything, "msg-9").
		Return(nil, errors.New("network down")).Once()

	h := newIngestHandler(t, mailbox, new(MockPDFTextExtractor), new(MockOrderUoWFactory), new(MockCalendar))
	require.NoError(t, h.Handle(ctx))

	mailbox.AssertNotCalled(t, "MarkRead", mock.Anything, "msg-9")
}

func newIngestHandler(
	t *testing.T,
	mailbox *MockMailbox,
	pdf *MockPDFTextExtractor,
	factory *MockOrderUoWFactory,
	calendar *MockCalendar,
) *commands.ProcessInboundDocumentsHandler {
	t.Helper()
	return commands.NewProcessInboundDocumentsHandler(
		mailbox,
		pdf,
		extractionExtractor(),
		commands.NewCreateOrderCommandHandler(factory),
		commands.NewCreateCalendarEntryCommandHandler(factory, calendar),
		commands.NewSendToPlantCommandHandler(factory, mailbox, commands.Recipients{Plant: "planta@ejemplo.com"}),
		"is:unread subject:pedido",
		discardLogger(),
	)
}

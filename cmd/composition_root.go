package cmd

import (
	"log/slog"

	adapterhttp "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/postgres"
	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/ports"
	"pedidos/internal/extraction"
	"pedidos/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	mailbox    ports.Mailbox
	calendar   ports.Calendar
	pdfText    ports.PDFTextExtractor
	extractor  *extraction.Extractor
	recipients commands.Recipients
	mailQuery  string
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	mailbox ports.Mailbox,
	calendar ports.Calendar,
	pdfText ports.PDFTextExtractor,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		mailbox:    mailbox,
		calendar:   calendar,
		pdfText:    pdfText,
		extractor:  extraction.NewExtractor(logger),
		recipients: commands.Recipients{
			Plant:       config.PlantEmail,
			Logistics:   config.LogisticsEmail,
			SlotPartner: config.SlotPartnerEmail,
		},
		mailQuery: config.MailQuery,
		logger:    logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCalendarEntryCommandHandler() commands.CreateCalendarEntryCommandHandler {
	return commands.NewCreateCalendarEntryCommandHandler(c.orderUoWFactory(), c.calendar)
}

func (c *CompositionRoot) CreateSendToPlantCommandHandler() commands.SendToPlantCommandHandler {
	return commands.NewSendToPlantCommandHandler(c.orderUoWFactory(), c.mailbox, c.recipients)
}

func (c *CompositionRoot) CreateMarkInProductionCommandHandler() commands.MarkInProductionCommandHandler {
	return commands.NewMarkInProductionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestSlotCommandHandler() commands.RequestSlotCommandHandler {
	return commands.NewRequestSlotCommandHandler(c.orderUoWFactory(), c.mailbox, c.recipients)
}

func (c *CompositionRoot) CreateConfirmSlotCommandHandler() commands.ConfirmSlotCommandHandler {
	return commands.NewConfirmSlotCommandHandler(c.orderUoWFactory(), c.calendar)
}

func (c *CompositionRoot) CreateMarkReadyForDeliveryCommandHandler() commands.MarkReadyForDeliveryCommandHandler {
	return commands.NewMarkReadyForDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDocumentsReceivedCommandHandler() commands.MarkDocumentsReceivedCommandHandler {
	return commands.NewMarkDocumentsReceivedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkInvoiceRegisteredCommandHandler() commands.MarkInvoiceRegisteredCommandHandler {
	return commands.NewMarkInvoiceRegisteredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkPaymentProofReceivedCommandHandler() commands.MarkPaymentProofReceivedCommandHandler {
	return commands.NewMarkPaymentProofReceivedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkChargedCommandHandler() commands.MarkChargedCommandHandler {
	return commands.NewMarkChargedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	return commands.NewFinalizeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateProcessInboundDocumentsHandler() *commands.ProcessInboundDocumentsHandler {
	return commands.NewProcessInboundDocumentsHandler(
		c.mailbox,
		c.pdfText,
		c.extractor,
		c.CreateCreateOrderCommandHandler(),
		c.CreateCreateCalendarEntryCommandHandler(),
		c.CreateSendToPlantCommandHandler(),
		c.mailQuery,
		c.logger,
	)
}

func (c *CompositionRoot) CreateSendPlantRemindersHandler() *commands.SendPlantRemindersHandler {
	return commands.NewSendPlantRemindersHandler(c.orderUoWFactory(), c.mailbox, c.recipients, c.logger)
}

func (c *CompositionRoot) CreateSendLogisticsRemindersHandler() *commands.SendLogisticsRemindersHandler {
	return commands.NewSendLogisticsRemindersHandler(c.orderUoWFactory(), c.mailbox, c.recipients, c.logger)
}

func (c *CompositionRoot) CreateFlagAwaitingPaymentProofHandler() *commands.FlagAwaitingPaymentProofHandler {
	return commands.NewFlagAwaitingPaymentProofHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByMonthQueryHandler() queries.GetOrdersByMonthQueryHandler {
	return queries.NewGetOrdersByMonthQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByYearQueryHandler() queries.GetOrdersByYearQueryHandler {
	return queries.NewGetOrdersByYearQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStateCountsQueryHandler() queries.GetStateCountsQueryHandler {
	return queries.NewGetStateCountsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every use case the REST surface drives.
func (c *CompositionRoot) CreateHTTPHandlers() adapterhttp.Handlers {
	return adapterhttp.Handlers{
		CreateOrder:              c.CreateCreateOrderCommandHandler(),
		CreateCalendarEntry:      c.CreateCreateCalendarEntryCommandHandler(),
		SendToPlant:              c.CreateSendToPlantCommandHandler(),
		MarkInProduction:         c.CreateMarkInProductionCommandHandler(),
		RequestSlot:              c.CreateRequestSlotCommandHandler(),
		ConfirmSlot:              c.CreateConfirmSlotCommandHandler(),
		MarkReadyForDelivery:     c.CreateMarkReadyForDeliveryCommandHandler(),
		MarkDelivered:            c.CreateMarkDeliveredCommandHandler(),
		MarkDocumentsReceived:    c.CreateMarkDocumentsReceivedCommandHandler(),
		MarkInvoiceRegistered:    c.CreateMarkInvoiceRegisteredCommandHandler(),
		MarkPaymentProofReceived: c.CreateMarkPaymentProofReceivedCommandHandler(),
		MarkCharged:              c.CreateMarkChargedCommandHandler(),
		FinalizeOrder:            c.CreateFinalizeOrderCommandHandler(),

		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetAllOrders:     c.CreateGetAllOrdersQueryHandler(),
		GetOrdersByMonth: c.CreateGetOrdersByMonthQueryHandler(),
		GetOrdersByYear:  c.CreateGetOrdersByYearQueryHandler(),
		GetStateCounts:   c.CreateGetStateCountsQueryHandler(),
	}
}

// CreateJobManager wires the five scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateProcessInboundDocumentsHandler(),
		c.CreateSendPlantRemindersHandler(),
		c.CreateSendLogisticsRemindersHandler(),
		c.CreateFlagAwaitingPaymentProofHandler(),
		c.CreateGetStateCountsQueryHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

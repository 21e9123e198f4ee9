// Package http exposes the order lifecycle over a REST API. The route set
// mirrors the operational flow: ingest-independent order creation, the
// transition endpoints the back office drives by hand, and the listings.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateParamLayout = "2006-01-02"

// Handlers bundles every use case the HTTP surface drives.
type Handlers struct {
	CreateOrder              commands.CreateOrderCommandHandler
	CreateCalendarEntry      commands.CreateCalendarEntryCommandHandler
	SendToPlant              commands.SendToPlantCommandHandler
	MarkInProduction         commands.MarkInProductionCommandHandler
	RequestSlot              commands.RequestSlotCommandHandler
	ConfirmSlot              commands.ConfirmSlotCommandHandler
	MarkReadyForDelivery     commands.MarkReadyForDeliveryCommandHandler
	MarkDelivered            commands.MarkDeliveredCommandHandler
	MarkDocumentsReceived    commands.MarkDocumentsReceivedCommandHandler
	MarkInvoiceRegistered    commands.MarkInvoiceRegisteredCommandHandler
	MarkPaymentProofReceived commands.MarkPaymentProofReceivedCommandHandler
	MarkCharged              commands.MarkChargedCommandHandler
	FinalizeOrder            commands.FinalizeOrderCommandHandler

	GetOrder         queries.GetOrderQueryHandler
	GetAllOrders     queries.GetAllOrdersQueryHandler
	GetOrdersByMonth queries.GetOrdersByMonthQueryHandler
	GetOrdersByYear  queries.GetOrdersByYearQueryHandler
	GetStateCounts   queries.GetStateCountsQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
	now      func() time.Time
}

// NewServer creates the HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		handlers: handlers,
		now:      time.Now,
	}
}

// RegisterRoutes mounts every route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/pedidos")

	api.GET("", s.GetOrders)
	api.GET("/:id", s.GetOrderByID)
	api.GET("/mes/:mes/anio/:anio", s.GetOrdersByMonth)
	api.GET("/anio/:anio", s.GetOrdersByYear)
	api.GET("/reporte/estados", s.GetStateReport)

	api.POST("", s.CreateOrder)
	api.POST("/:id/calendario", s.AddToCalendar)
	api.POST("/:id/enviar-planta", s.SendToPlant)
	api.POST("/:id/solicitar-turno", s.RequestSlot)

	api.PUT("/:id/fabricacion", s.MarkInProduction)
	api.PUT("/:id/confirmar-turno", s.ConfirmSlot)
	api.PUT("/:id/preparado-entrega", s.MarkReadyForDelivery)
	api.PUT("/:id/entregado", s.MarkDelivered)
	api.PUT("/:id/documentos-recibidos", s.MarkDocumentsReceived)
	api.PUT("/:id/factura-alta", s.MarkInvoiceRegistered)
	api.PUT("/:id/echeck-recibido", s.MarkPaymentProofReceived)
	api.PUT("/:id/cobrado", s.MarkCharged)
	api.PUT("/:id/finalizar", s.FinalizeOrder)
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the payload of POST /api/pedidos.
type NewOrderRequest struct {
	FechaEntrega       string         `json:"fechaEntrega"`
	HorarioEntrega     string         `json:"horarioEntrega"`
	ClienteFacturacion string         `json:"clienteFacturacion"`
	Destinatario       string         `json:"destinatarioEntrega"`
	DireccionEntrega   string         `json:"direccionEntrega"`
	LugarEntrega       string         `json:"lugarEntrega"`
	OrdenCompra        string         `json:"ordenCompra"`
	Notas              string         `json:"notas"`
	Items              []NewOrderItem `json:"items"`
}

// NewOrderItem is one line of a manual order submission.
type NewOrderItem struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// ConfirmSlotRequest is the payload of PUT /:id/confirmar-turno.
type ConfirmSlotRequest struct {
	Turno      string `json:"turno"`
	FechaTurno string `json:"fechaTurno"`
}

// CreateOrder handles POST /api/pedidos - admits a manually submitted order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryDate, err := time.Parse(dateParamLayout, request.FechaEntrega)
	if err != nil {
		return badRequest(ctx, "Invalid fechaEntrega, expected YYYY-MM-DD")
	}

	items := make([]commands.OrderItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.OrderItemInput{
			Product:   item.Producto,
			Quantity:  item.Cantidad,
			UnitPrice: item.PrecioUnitario,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, s.now(), deliveryDate, items, order.Details{
		DeliveryTime:     request.HorarioEntrega,
		BillingClient:    request.ClienteFacturacion,
		Recipient:        request.Destinatario,
		DeliveryAddress:  request.DireccionEntrega,
		DeliveryPlace:    request.LugarEntrega,
		PurchaseOrderRef: request.OrdenCompra,
		Notes:            request.Notas,
	})
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/pedidos - lists every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID handles GET /api/pedidos/:id - one order with its items.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx)
		}
		return internalError(ctx, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByMonth handles GET /api/pedidos/mes/:mes/anio/:anio.
func (s *Server) GetOrdersByMonth(ctx echo.Context) error {
	month, err := strconv.Atoi(ctx.Param("mes"))
	if err != nil {
		return badRequest(ctx, "Invalid month")
	}
	year, err := strconv.Atoi(ctx.Param("anio"))
	if err != nil {
		return badRequest(ctx, "Invalid year")
	}

	query, err := queries.NewGetOrdersByMonthQuery(month, year)
	if err != nil {
		return badRequest(ctx, "Invalid month or year: "+err.Error())
	}

	orders, err := s.handlers.GetOrdersByMonth.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrdersByYear handles GET /api/pedidos/anio/:anio.
func (s *Server) GetOrdersByYear(ctx echo.Context) error {
	year, err := strconv.Atoi(ctx.Param("anio"))
	if err != nil {
		return badRequest(ctx, "Invalid year")
	}

	query, err := queries.NewGetOrdersByYearQuery(year)
	if err != nil {
		return badRequest(ctx, "Invalid year: "+err.Error())
	}

	orders, err := s.handlers.GetOrdersByYear.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetStateReport handles GET /api/pedidos/reporte/estados.
func (s *Server) GetStateReport(ctx echo.Context) error {
	report, err := s.handlers.GetStateCounts.Handle(ctx.Request().Context(), queries.NewGetStateCountsQuery())
	if err != nil {
		return internalError(ctx, "Failed to build report")
	}
	return ctx.JSON(http.StatusOK, report)
}

// AddToCalendar handles POST /api/pedidos/:id/calendario.
func (s *Server) AddToCalendar(ctx echo.Context) error {
	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCreateCalendarEntryCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.CreateCalendarEntry.Handle(ctx.Request().Context(), cmd)
	})
}

// SendToPlant handles POST /api/pedidos/:id/enviar-planta.
func (s *Server) SendToPlant(ctx echo.Context) error {
	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewSendToPlantCommand(orderID, s.now())
		if err != nil {
			return err
		}
		return s.handlers.SendToPlant.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkInProduction handles PUT /api/pedidos/:id/fabricacion.
func (s *Server) MarkInProduction(ctx echo.Context) error {
	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkInProductionCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.MarkInProduction.Handle(ctx.Request().Context(), cmd)
	})
}

// RequestSlot handles POST /api/pedidos/:id/solicitar-turno.
func (s *Server) RequestSlot(ctx echo.Context) error {
	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewRequestSlotCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.RequestSlot.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmSlot handles PUT /api/pedidos/:id/confirmar-turno.
func (s *Server) ConfirmSlot(ctx echo.Context) error {
	var request ConfirmSlotRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	slotAt, err := time.Parse(time.RFC3339, request.FechaTurno)
	if err != nil {
		// Accept the original's local datetime format as well
		slotAt, err = time.Parse("2006-01-02T15:04:05", request.FechaTurno)
	}
	if err != nil {
		return badRequest(ctx, "Invalid fechaTurno")
	}

	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewConfirmSlotCommand(orderID, request.Turno, slotAt)
		if err != nil {
			return err
		}
		return s.handlers.ConfirmSlot.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkReadyForDelivery handles PUT /api/pedidos/:id/preparado-entrega.
func (s *Server) MarkReadyForDelivery(ctx echo.Context) error {
	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkReadyForDeliveryCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.MarkReadyForDelivery.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkDelivered handles PUT /api/pedidos/:id/entregado?fechaEntrega=YYYY-MM-DD.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	date, err := time.Parse(dateParamLayout, ctx.QueryParam("fechaEntrega"))
	if err != nil {
		return badRequest(ctx, "Invalid fechaEntrega, expected YYYY-MM-DD")
	}

	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkDeliveredCommand(orderID, date)
		if err != nil {
			return err
		}
		return s.handlers.MarkDelivered.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkDocumentsReceived handles PUT /api/pedidos/:id/documentos-recibidos.
func (s *Server) MarkDocumentsReceived(ctx echo.Context) error {
	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkDocumentsReceivedCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.MarkDocumentsReceived.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkInvoiceRegistered handles PUT /api/pedidos/:id/factura-alta?fechaAlta=YYYY-MM-DD.
func (s *Server) MarkInvoiceRegistered(ctx echo.Context) error {
	date, err := time.Parse(dateParamLayout, ctx.QueryParam("fechaAlta"))
	if err != nil {
		return badRequest(ctx, "Invalid fechaAlta, expected YYYY-MM-DD")
	}

	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkInvoiceRegisteredCommand(orderID, date)
		if err != nil {
			return err
		}
		return s.handlers.MarkInvoiceRegistered.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkPaymentProofReceived handles PUT /api/pedidos/:id/echeck-recibido?fechaRecepcion=YYYY-MM-DD.
func (s *Server) MarkPaymentProofReceived(ctx echo.Context) error {
	date, err := time.Parse(dateParamLayout, ctx.QueryParam("fechaRecepcion"))
	if err != nil {
		return badRequest(ctx, "Invalid fechaRecepcion, expected YYYY-MM-DD")
	}

	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkPaymentProofReceivedCommand(orderID, date)
		if err != nil {
			return err
		}
		return s.handlers.MarkPaymentProofReceived.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkCharged handles PUT /api/pedidos/:id/cobrado.
func (s *Server) MarkCharged(ctx echo.Context) error {
	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkChargedCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.MarkCharged.Handle(ctx.Request().Context(), cmd)
	})
}

// FinalizeOrder handles PUT /api/pedidos/:id/finalizar.
func (s *Server) FinalizeOrder(ctx echo.Context) error {
	return s.runOrderCommand(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewFinalizeOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.FinalizeOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// runOrderCommand parses the order id, runs the command and maps domain
// errors onto HTTP statuses.
func (s *Server) runOrderCommand(ctx echo.Context, run func(orderID kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err := run(orderID); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// commandError maps use case failures: unknown order -> 404, lifecycle or
// validation violation -> 409/400, duplicate ingestion -> 409, external
// dependency failure -> 502.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx)
	case errors.Is(err, commands.ErrOrderAlreadyIngested):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	case errors.Is(err, errs.ErrExternalDependency):
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, err.Error())
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: "Order not found",
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

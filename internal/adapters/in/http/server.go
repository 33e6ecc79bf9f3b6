package http

import (
	"errors"
	"net/http"

	"cannacommerce/internal/core/application/usecases/commands"
	"cannacommerce/internal/core/application/usecases/queries"
	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/core/domain/model/inventory"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"
	"cannacommerce/internal/core/domain/services"
	"cannacommerce/internal/generated/servers"
	"cannacommerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitPurchaseOrderHandler   commands.SubmitPurchaseOrderCommandHandler
	submitAcknowledgmentHandler  commands.SubmitAcknowledgmentCommandHandler
	submitShipNoticeHandler      commands.SubmitShipNoticeCommandHandler
	submitInvoiceHandler         commands.SubmitInvoiceCommandHandler
	confirmDeliveryHandler       commands.ConfirmDeliveryCommandHandler
	cancelOrderHandler           commands.CancelOrderCommandHandler
	transferStockHandler         commands.TransferStockCommandHandler
	recordCustodyTransferHandler commands.RecordCustodyTransferCommandHandler

	// Query handlers
	getOpenOrdersHandler    queries.GetOpenOrdersQueryHandler
	getReorderAlertsHandler queries.GetItemsBelowReorderPointQueryHandler
	getCustodyChainHandler  queries.GetCustodyChainQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitPurchaseOrderHandler commands.SubmitPurchaseOrderCommandHandler,
	submitAcknowledgmentHandler commands.SubmitAcknowledgmentCommandHandler,
	submitShipNoticeHandler commands.SubmitShipNoticeCommandHandler,
	submitInvoiceHandler commands.SubmitInvoiceCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	transferStockHandler commands.TransferStockCommandHandler,
	recordCustodyTransferHandler commands.RecordCustodyTransferCommandHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getReorderAlertsHandler queries.GetItemsBelowReorderPointQueryHandler,
	getCustodyChainHandler queries.GetCustodyChainQueryHandler,
) *Server {
	return &Server{
		submitPurchaseOrderHandler:   submitPurchaseOrderHandler,
		submitAcknowledgmentHandler:  submitAcknowledgmentHandler,
		submitShipNoticeHandler:      submitShipNoticeHandler,
		submitInvoiceHandler:         submitInvoiceHandler,
		confirmDeliveryHandler:       confirmDeliveryHandler,
		cancelOrderHandler:           cancelOrderHandler,
		transferStockHandler:         transferStockHandler,
		recordCustodyTransferHandler: recordCustodyTransferHandler,
		getOpenOrdersHandler:         getOpenOrdersHandler,
		getReorderAlertsHandler:      getReorderAlertsHandler,
		getCustodyChainHandler:       getCustodyChainHandler,
	}
}

// SubmitPurchaseOrder handles POST /api/v1/documents/purchase-orders.
func (s *Server) SubmitPurchaseOrder(ctx echo.Context) error {
	var payload servers.NewPurchaseOrder
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	po, err := buildPurchaseOrder(payload)
	if err != nil {
		return badRequest(ctx, "Invalid purchase order: "+err.Error())
	}

	cmd, err := commands.NewSubmitPurchaseOrderCommand(po)
	if err != nil {
		return badRequest(ctx, "Invalid purchase order: "+err.Error())
	}

	if handleErr := s.submitPurchaseOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SubmitAcknowledgment handles POST /api/v1/documents/acknowledgments.
func (s *Server) SubmitAcknowledgment(ctx echo.Context) error {
	var payload servers.NewAcknowledgment
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ack, err := buildAcknowledgment(payload)
	if err != nil {
		return badRequest(ctx, "Invalid acknowledgment: "+err.Error())
	}

	cmd, err := commands.NewSubmitAcknowledgmentCommand(ack)
	if err != nil {
		return badRequest(ctx, "Invalid acknowledgment: "+err.Error())
	}

	if handleErr := s.submitAcknowledgmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SubmitShipNotice handles POST /api/v1/documents/ship-notices.
func (s *Server) SubmitShipNotice(ctx echo.Context) error {
	var payload servers.NewShipNotice
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	asn, err := buildShipNotice(payload)
	if err != nil {
		return badRequest(ctx, "Invalid ship notice: "+err.Error())
	}

	cmd, err := commands.NewSubmitShipNoticeCommand(asn)
	if err != nil {
		return badRequest(ctx, "Invalid ship notice: "+err.Error())
	}

	if handleErr := s.submitShipNoticeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SubmitInvoice handles POST /api/v1/documents/invoices.
func (s *Server) SubmitInvoice(ctx echo.Context) error {
	var payload servers.NewInvoice
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	inv, err := buildInvoice(payload)
	if err != nil {
		return badRequest(ctx, "Invalid invoice: "+err.Error())
	}

	cmd, err := commands.NewSubmitInvoiceCommand(inv)
	if err != nil {
		return badRequest(ctx, "Invalid invoice: "+err.Error())
	}

	if handleErr := s.submitInvoiceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ConfirmDelivery handles POST /api/v1/orders/{poNumber}/delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context, poNumber string) error {
	var payload servers.DeliveryConfirmation
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(poNumber, payload.DeliveredAt)
	if err != nil {
		return badRequest(ctx, "Invalid delivery confirmation: "+err.Error())
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{poNumber}/cancellation.
func (s *Server) CancelOrder(ctx echo.Context, poNumber string) error {
	var payload servers.Cancellation
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var reason string
	if payload.Reason != nil {
		reason = *payload.Reason
	}

	cmd, err := commands.NewCancelOrderCommand(poNumber, reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransferStock handles POST /api/v1/inventory/transfers.
func (s *Server) TransferStock(ctx echo.Context) error {
	var payload servers.StockTransfer
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fromLocation, err := kernel.NewGLN(payload.FromLocation)
	if err != nil {
		return badRequest(ctx, "Invalid transfer: "+err.Error())
	}
	toLocation, err := kernel.NewGLN(payload.ToLocation)
	if err != nil {
		return badRequest(ctx, "Invalid transfer: "+err.Error())
	}

	var batchNumber string
	if payload.BatchNumber != nil {
		batchNumber = *payload.BatchNumber
	}

	cmd, err := commands.NewTransferStockCommand(
		payload.Sku, fromLocation, toLocation, payload.Quantity, batchNumber, payload.OccurredAt)
	if err != nil {
		return badRequest(ctx, "Invalid transfer: "+err.Error())
	}

	if handleErr := s.transferStockHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordCustodyEvent handles POST /api/v1/custody/events.
func (s *Server) RecordCustodyEvent(ctx echo.Context) error {
	var payload servers.NewCustodyEvent
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fromHolder, err := kernel.NewGLN(payload.FromHolder)
	if err != nil {
		return badRequest(ctx, "Invalid custody event: "+err.Error())
	}
	toHolder, err := kernel.NewGLN(payload.ToHolder)
	if err != nil {
		return badRequest(ctx, "Invalid custody event: "+err.Error())
	}
	eventType, err := custody.EventTypeFromString(string(payload.EventType))
	if err != nil {
		return badRequest(ctx, "Invalid custody event: "+err.Error())
	}

	cmd, err := commands.NewRecordCustodyTransferCommand(
		payload.BatchNumber, fromHolder, toHolder, eventType, payload.OccurredAt)
	if err != nil {
		return badRequest(ctx, "Invalid custody event: "+err.Error())
	}

	if handleErr := s.recordCustodyTransferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOpenOrders handles GET /api/v1/orders/open.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	openOrders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.OpenOrder, len(openOrders))
	for i, o := range openOrders {
		response[i] = servers.OpenOrder{
			Id:           o.ID.Bytes(),
			PoNumber:     o.PONumber,
			Status:       o.Status.String(),
			Fulfillment:  o.Fulfillment.String(),
			OrderedUnits: o.OrderedUnits,
			ShippedUnits: o.ShippedUnits,
			SubmittedAt:  o.SubmittedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReorderAlerts handles GET /api/v1/inventory/reorder-alerts.
func (s *Server) GetReorderAlerts(ctx echo.Context) error {
	query := queries.NewGetItemsBelowReorderPointQuery()

	positions, err := s.getReorderAlertsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve reorder alerts",
		})
	}

	response := make([]servers.ReorderAlert, len(positions))
	for i, p := range positions {
		response[i] = servers.ReorderAlert{
			Sku:             p.SKU,
			Location:        p.Location.String(),
			OnHand:          p.OnHand,
			Reserved:        p.Reserved,
			Available:       p.Available,
			ReorderPoint:    p.ReorderPoint,
			ReorderQuantity: p.ReorderQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustodyChain handles GET /api/v1/custody/chains/{batchNumber}.
func (s *Server) GetCustodyChain(ctx echo.Context, batchNumber string) error {
	query, err := queries.NewGetCustodyChainQuery(batchNumber)
	if err != nil {
		return badRequest(ctx, "Invalid batch number: "+err.Error())
	}

	chain, err := s.getCustodyChainHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "No custody ledger exists for batch " + batchNumber,
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve custody ledger",
		})
	}

	events := make([]servers.CustodyEvent, len(chain.Events))
	for i, e := range chain.Events {
		event := servers.CustodyEvent{
			Seq:       e.Seq,
			Timestamp: e.Timestamp,
			ToHolder:  e.ToHolder.String(),
			EventType: e.EventType.String(),
		}
		if e.FromHolder != nil {
			holder := e.FromHolder.String()
			event.FromHolder = &holder
		}
		if e.CorrectsSeq > 0 {
			correctsSeq := e.CorrectsSeq
			event.CorrectsSeq = &correctsSeq
		}
		if e.Notes != "" {
			notes := e.Notes
			event.Notes = &notes
		}
		events[i] = event
	}

	return ctx.JSON(http.StatusOK, servers.CustodyChain{
		BatchNumber:   chain.BatchNumber,
		OriginHolder:  chain.OriginHolder.String(),
		CurrentHolder: chain.CurrentHolder.String(),
		Events:        events,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError maps a command handler failure onto the API's status codes.
// Consistency violations are distinguished from plain validation failures so
// callers can tell "your document is malformed" from "your document disagrees
// with the documents already linked".
func commandError(ctx echo.Context, err error) error {
	var insufficientStock *inventory.InsufficientStockError
	var custodyGap *custody.CustodyGapError
	var nonMonotonic *custody.NonMonotonicTimeError

	switch {
	case errors.Is(err, commands.ErrConsistencyViolations):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrOrphanDocument),
		errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrTerminalState),
		errors.As(err, &insufficientStock),
		errors.As(err, &custodyGap),
		errors.As(err, &nonMonotonic):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process request",
		})
	}
}

// Package http exposes the order lifecycle over a JSON API.
// Handlers translate requests into commands and queries, run them, and map
// domain error codes onto HTTP statuses.
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/commands"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/queries"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
)

// TenantHeader carries the tenant identifier on every request.
// Upstream auth middleware is expected to have verified it.
const TenantHeader = "X-Tenant-ID"

// codeInvalidRequest marks malformed input rejected before any use case ran.
const codeInvalidRequest = "invalid_request"

// Handler interfaces consumed by the server. Satisfied by the concrete
// use case handlers; kept narrow so tests can substitute them.
type (
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, command commands.ChangeOrderStatusCommand) (*order.Order, error)
	}

	EditOrderHandler interface {
		Handle(ctx context.Context, command commands.EditOrderCommand) (*order.Order, error)
	}

	BatchChangeStatusHandler interface {
		Handle(ctx context.Context, command commands.BatchChangeStatusCommand) (commands.BatchOperationResult, error)
	}

	BatchCancelOrdersHandler interface {
		Handle(ctx context.Context, command commands.BatchCancelOrdersCommand) (commands.BatchOperationResult, error)
	}

	BatchAssignDriverHandler interface {
		Handle(ctx context.Context, command commands.BatchAssignDriverCommand) (commands.BatchOperationResult, error)
	}

	GetOrdersByStatusHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersByStatusQuery) ([]queries.GetOrdersByStatusQueryResponse, error)
	}

	GetOrderHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.GetOrderHistoryQueryResponse, error)
	}
)

// Server wires the order lifecycle use cases to echo routes.
type Server struct {
	changeStatusHandler ChangeOrderStatusHandler
	editOrderHandler    EditOrderHandler
	batchStatusHandler  BatchChangeStatusHandler
	batchCancelHandler  BatchCancelOrdersHandler
	batchAssignHandler  BatchAssignDriverHandler
	ordersByStatus      GetOrdersByStatusHandler
	orderHistory        GetOrderHistoryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	changeStatusHandler ChangeOrderStatusHandler,
	editOrderHandler EditOrderHandler,
	batchStatusHandler BatchChangeStatusHandler,
	batchCancelHandler BatchCancelOrdersHandler,
	batchAssignHandler BatchAssignDriverHandler,
	ordersByStatus GetOrdersByStatusHandler,
	orderHistory GetOrderHistoryHandler,
) *Server {
	return &Server{
		changeStatusHandler: changeStatusHandler,
		editOrderHandler:    editOrderHandler,
		batchStatusHandler:  batchStatusHandler,
		batchCancelHandler:  batchCancelHandler,
		batchAssignHandler:  batchAssignHandler,
		ordersByStatus:      ordersByStatus,
		orderHistory:        orderHistory,
	}
}

// RegisterRoutes mounts every route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id/history", s.GetOrderHistory)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.PATCH("/orders/:id", s.EditOrder)
	api.POST("/orders/batch/status", s.BatchChangeStatus)
	api.POST("/orders/batch/cancel", s.BatchCancelOrders)
	api.POST("/orders/batch/assign-driver", s.BatchAssignDriver)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// TransitionOrder handles POST /api/v1/orders/:id/transition - moves one order
// to a new lifecycle status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var request TransitionOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	changedBy, err := optionalUUID(request.ChangedBy)
	if err != nil {
		return badRequest(ctx, err)
	}
	driverID, err := optionalUUID(request.DriverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	command, err := commands.NewChangeOrderStatusCommand(
		tenantID, orderID,
		order.Status(request.NewStatus),
		changedBy, request.Notes, driverID,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// EditOrder handles PATCH /api/v1/orders/:id - changes items and metadata of
// an order that has not begun fulfillment.
func (s *Server) EditOrder(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var request EditOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	changes := make([]order.ItemChange, len(request.ItemChanges))
	for i, change := range request.ItemChanges {
		itemID, parseErr := kernel.UUIDFromString(change.ItemID)
		if parseErr != nil {
			return badRequest(ctx, parseErr)
		}
		changes[i] = order.ItemChange{ItemID: itemID, NewQty: change.NewQty}
	}

	command, err := commands.NewEditOrderCommand(
		tenantID, orderID,
		request.Notes, request.RequestedDeliveryDate, changes,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.editOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// BatchChangeStatus handles POST /api/v1/orders/batch/status - applies one
// transition to many orders and reports per-order outcomes.
func (s *Server) BatchChangeStatus(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request BatchChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	orderIDs, err := parseUUIDs(request.OrderIDs)
	if err != nil {
		return badRequest(ctx, err)
	}
	changedBy, err := optionalUUID(request.ChangedBy)
	if err != nil {
		return badRequest(ctx, err)
	}
	driverID, err := optionalUUID(request.DriverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	command, err := commands.NewBatchChangeStatusCommand(
		tenantID, orderIDs,
		order.Status(request.NewStatus),
		changedBy, request.Notes, driverID,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.batchStatusHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResultToResponse(result))
}

// BatchCancelOrders handles POST /api/v1/orders/batch/cancel.
func (s *Server) BatchCancelOrders(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request BatchCancelRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	orderIDs, err := parseUUIDs(request.OrderIDs)
	if err != nil {
		return badRequest(ctx, err)
	}
	cancelledBy, err := optionalUUID(request.CancelledBy)
	if err != nil {
		return badRequest(ctx, err)
	}

	command, err := commands.NewBatchCancelOrdersCommand(
		tenantID, orderIDs, request.Reason, cancelledBy,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.batchCancelHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResultToResponse(result))
}

// BatchAssignDriver handles POST /api/v1/orders/batch/assign-driver.
func (s *Server) BatchAssignDriver(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request BatchAssignDriverRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	orderIDs, err := parseUUIDs(request.OrderIDs)
	if err != nil {
		return badRequest(ctx, err)
	}
	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	command, err := commands.NewBatchAssignDriverCommand(tenantID, orderIDs, driverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.batchAssignHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResultToResponse(result))
}

// GetOrders handles GET /api/v1/orders - lists a tenant's orders, optionally
// filtered by ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status := order.Status(raw)
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersByStatusQuery(tenantID, statusFilter)
	if err != nil {
		return badRequest(ctx, err)
	}

	rows, err := s.ordersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(rows))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history - returns the status
// audit trail, oldest entry first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(tenantID, orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.orderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, historyToResponse(entries))
}

func tenantFromRequest(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(TenantHeader))
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, len(raw))
	for i, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    codeInvalidRequest,
		Message: err.Error(),
	})
}

// domainError maps a use case error onto its HTTP status via the stable
// machine code carried by the error.
func domainError(ctx echo.Context, err error) error {
	code := order.ErrorCode(err)
	return ctx.JSON(httpStatus(code), ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// httpStatus maps machine codes onto HTTP statuses. State the order cannot
// satisfy right now is a conflict; a request that can never succeed against
// the current resource shape is unprocessable.
func httpStatus(code string) int {
	switch code {
	case order.CodeNotFound:
		return http.StatusNotFound
	case order.CodeConflict, order.CodeInvalidTransition,
		order.CodeOrderTerminal, order.CodeNotCancellable:
		return http.StatusConflict
	case order.CodeDriverRequired, order.CodeDriverInvalid,
		order.CodeNotEditable, order.CodeItemNotFound:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

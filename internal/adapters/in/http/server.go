package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/pipeline"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type (
	CreateServiceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateServiceOrderCommand) (*serviceorder.ServiceOrder, error)
	}
	ChangeServiceOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeServiceOrderStatusCommand) (*serviceorder.ServiceOrder, error)
	}
	MoveServiceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.MoveServiceOrderCommand) (commands.MoveResult, error)
	}
	ApplyQuickActionHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyQuickActionCommand) (commands.QuickActionResult, error)
	}
	ListServiceOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListServiceOrdersQuery) ([]queries.ServiceOrderView, error)
	}
	GetServiceOrderHandler interface {
		Handle(ctx context.Context, query queries.GetServiceOrderQuery) (queries.ServiceOrderView, error)
	}
	GetPipelineBoardHandler interface {
		Handle(ctx context.Context, query queries.GetPipelineBoardQuery) (queries.GetPipelineBoardQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateServiceOrder       CreateServiceOrderHandler
	ChangeServiceOrderStatus ChangeServiceOrderStatusHandler
	MoveServiceOrder         MoveServiceOrderHandler
	ApplyQuickAction         ApplyQuickActionHandler
	ListServiceOrders        ListServiceOrdersHandler
	GetServiceOrder          GetServiceOrderHandler
	GetPipelineBoard         GetPipelineBoardHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	columns  pipeline.Columns
	logger   *slog.Logger
}

func NewServer(handlers Handlers, columns pipeline.Columns, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		columns:  columns,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// ListServiceOrders handles GET /api/v1/service-orders?status=A,B.
func (s *Server) ListServiceOrders(c echo.Context) error {
	// Optional parameters bind into a pointer; nil means no filter.
	var names *[]string
	if err := runtime.BindQueryParameter("form", false, false, "status", c.QueryParams(), &names); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid format for parameter status: "+err.Error())
	}

	var filter []string
	if names != nil {
		filter = *names
	}

	statuses := make([]serviceorder.Status, 0, len(filter))
	for _, name := range filter {
		status, err := serviceorder.ParseStatus(strings.TrimSpace(name))
		if err != nil {
			return s.fail(c, err, "Invalid status filter")
		}
		statuses = append(statuses, status)
	}

	query, err := queries.NewListServiceOrdersQuery(statuses...)
	if err != nil {
		return s.fail(c, err, "Invalid status filter")
	}

	views, err := s.handlers.ListServiceOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to retrieve service orders")
	}

	response := make([]ServiceOrderResponse, 0, len(views))
	for _, v := range views {
		response = append(response, toServiceOrderResponse(v))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateServiceOrder handles POST /api/v1/service-orders.
func (s *Server) CreateServiceOrder(c echo.Context) error {
	var body NewServiceOrderRequest
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid request body")
	}

	priority, err := serviceorder.ParsePriority(body.Priority)
	if err != nil {
		return s.fail(c, err, "Invalid priority")
	}

	details := serviceorder.Details{
		CustomerName: body.CustomerName,
		DeviceType:   body.DeviceType,
		DeviceBrand:  body.DeviceBrand,
	}
	if body.LaborCost != nil {
		cost, costErr := kernel.MoneyFromString(*body.LaborCost)
		if costErr != nil {
			return s.fail(c, costErr, "Invalid labor cost")
		}
		details.LaborCost = &cost
	}

	cmd, err := commands.NewCreateServiceOrderCommand(kernel.NewUUID(), body.Number, body.Title, priority, details)
	if err != nil {
		return s.fail(c, err, "Invalid service order")
	}

	order, err := s.handlers.CreateServiceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to create service order")
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/v1/service-orders/"+order.ID().String())
	return c.JSON(http.StatusCreated, orderResponse(order))
}

// GetServiceOrder handles GET /api/v1/service-orders/{id}.
func (s *Server) GetServiceOrder(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetServiceOrderQuery(id)
	if err != nil {
		return s.fail(c, err, "Invalid service order id")
	}

	view, err := s.handlers.GetServiceOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to retrieve service order")
	}

	return c.JSON(http.StatusOK, toServiceOrderResponse(view))
}

// ChangeServiceOrderStatus handles PUT /api/v1/service-orders/{id}/status.
// This is the plain persistence path: no transition policy applies.
func (s *Server) ChangeServiceOrderStatus(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	var body StatusChangeRequest
	if err = c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid request body")
	}

	status, err := serviceorder.ParseStatus(body.Status)
	if err != nil {
		return s.fail(c, err, "Invalid status")
	}

	cmd, err := commands.NewChangeServiceOrderStatusCommand(id, status, commands.SourceAPI)
	if err != nil {
		return s.fail(c, err, "Invalid status change")
	}

	order, err := s.handlers.ChangeServiceOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to change status")
	}

	return c.JSON(http.StatusOK, orderResponse(order))
}

// MoveServiceOrder handles POST /api/v1/service-orders/{id}/moves. A rejected
// drop is a normal answer with moved=false.
func (s *Server) MoveServiceOrder(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	var body MoveRequest
	if err = c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid request body")
	}

	target, err := serviceorder.ParseStatus(body.Target)
	if err != nil {
		return s.fail(c, err, "Invalid target")
	}

	cmd, err := commands.NewMoveServiceOrderCommand(id, target)
	if err != nil {
		return s.fail(c, err, "Invalid move")
	}

	result, err := s.handlers.MoveServiceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to move service order")
	}

	return c.JSON(http.StatusOK, MoveResponse{
		Moved:    result.Moved(),
		Decision: result.Decision.String(),
		Order:    orderResponse(result.Order),
	})
}

// ApplyQuickAction handles POST /api/v1/service-orders/{id}/actions/{action}.
func (s *Server) ApplyQuickAction(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	var action string
	err = runtime.BindStyledParameterWithOptions("simple", "action", c.Param("action"), &action,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid format for parameter action: "+err.Error())
	}

	cmd, err := commands.NewApplyQuickActionCommand(id, action)
	if err != nil {
		return s.fail(c, err, "Invalid quick action")
	}

	result, err := s.handlers.ApplyQuickAction.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to apply quick action")
	}

	return c.JSON(http.StatusOK, QuickActionResultResponse{
		Action: toQuickActionResponse(result.Action),
		Order:  orderResponse(result.Order),
	})
}

// GetPipelineBoard handles GET /api/v1/pipeline/board.
func (s *Server) GetPipelineBoard(c echo.Context) error {
	board, err := s.handlers.GetPipelineBoard.Handle(c.Request().Context(), queries.NewGetPipelineBoardQuery())
	if err != nil {
		return s.fail(c, err, "Failed to build pipeline board")
	}
	return c.JSON(http.StatusOK, toBoardResponse(board))
}

// GetPipelineColumns handles GET /api/v1/pipeline/columns.
func (s *Server) GetPipelineColumns(c echo.Context) error {
	response := make([]ColumnResponse, 0, len(s.columns))
	for _, column := range s.columns {
		response = append(response, toColumnResponse(column, pipeline.ActionsFor(column.Status)))
	}
	return c.JSON(http.StatusOK, response)
}

// OpenAPI handles GET /api/openapi.json.
func (s *Server) OpenAPI(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, OpenAPIDocument())
}

func bindOrderID(c echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("invalid format for parameter id: %w", err)
	}
	return kernel.UUIDFromString(id.String())
}

// Package http is the inbound adapter: an echo server translating the JSON
// API into commands and queries. Handlers validate at the boundary, delegate
// to the application layer, and map domain errors onto status codes.
package http

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"fleetboard/internal/core/application/usecases/commands"
	"fleetboard/internal/core/application/usecases/queries"
	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/core/domain/model/order"
	"fleetboard/internal/observability"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler
	assignDriverHandler commands.AssignDriverCommandHandler
	createDriverHandler commands.CreateDriverCommandHandler
	updateDriverHandler commands.UpdateDriverCommandHandler
	deleteDriverHandler commands.DeleteDriverCommandHandler
	resetDataHandler    commands.ResetDataCommandHandler

	getOrdersHandler         queries.GetOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersByDriverHandler queries.GetOrdersByDriverQueryHandler
	getDriversHandler        queries.GetDriversQueryHandler
	getDriverHandler         queries.GetDriverQueryHandler
	countOrdersHandler       queries.CountOrdersByStatusQueryHandler

	sqlDB      *sql.DB
	production bool
}

// ServerDeps bundles the handlers and collaborators the server needs.
type ServerDeps struct {
	CreateOrderHandler  commands.CreateOrderCommandHandler
	UpdateOrderHandler  commands.UpdateOrderCommandHandler
	DeleteOrderHandler  commands.DeleteOrderCommandHandler
	AssignDriverHandler commands.AssignDriverCommandHandler
	CreateDriverHandler commands.CreateDriverCommandHandler
	UpdateDriverHandler commands.UpdateDriverCommandHandler
	DeleteDriverHandler commands.DeleteDriverCommandHandler
	ResetDataHandler    commands.ResetDataCommandHandler

	GetOrdersHandler         queries.GetOrdersQueryHandler
	GetOrderHandler          queries.GetOrderQueryHandler
	GetOrdersByDriverHandler queries.GetOrdersByDriverQueryHandler
	GetDriversHandler        queries.GetDriversQueryHandler
	GetDriverHandler         queries.GetDriverQueryHandler
	CountOrdersHandler       queries.CountOrdersByStatusQueryHandler

	SQLDB      *sql.DB
	Production bool
}

// NewServer creates the HTTP server over the given use-case handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		createOrderHandler:       deps.CreateOrderHandler,
		updateOrderHandler:       deps.UpdateOrderHandler,
		deleteOrderHandler:       deps.DeleteOrderHandler,
		assignDriverHandler:      deps.AssignDriverHandler,
		createDriverHandler:      deps.CreateDriverHandler,
		updateDriverHandler:      deps.UpdateDriverHandler,
		deleteDriverHandler:      deps.DeleteDriverHandler,
		resetDataHandler:         deps.ResetDataHandler,
		getOrdersHandler:         deps.GetOrdersHandler,
		getOrderHandler:          deps.GetOrderHandler,
		getOrdersByDriverHandler: deps.GetOrdersByDriverHandler,
		getDriversHandler:        deps.GetDriversHandler,
		getDriverHandler:         deps.GetDriverHandler,
		countOrdersHandler:       deps.CountOrdersHandler,
		sqlDB:                    deps.SQLDB,
		production:               deps.Production,
	}
}

// RegisterRoutes mounts the API. The static /orders/stats and /:id/assign
// routes are registered ahead of the generic /:id routes; echo matches static
// segments first regardless, but the ordering keeps the collision constraint
// visible.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/stats", s.GetOrderStats)
	api.PATCH("/orders/:id/assign", s.AssignDriver)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetDrivers)
	api.GET("/drivers/:id/orders", s.GetDriverOrders)
	api.GET("/drivers/:id", s.GetDriver)
	api.PATCH("/drivers/:id", s.UpdateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)

	api.POST("/data/reset", s.ResetData)
	api.GET("/health", s.Health)
}

// respondOrder re-reads the order through the query side so the response
// carries the joined driver object, the same shape every order route returns.
func (s *Server) respondOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(status, orderJSON(resp))
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName, req.CustomerPhone, req.DeliveryAddress, req.OrderDetails,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusCreated, created.ID())
}

// GetOrders handles GET /api/orders with optional status/limit/offset params.
func (s *Server) GetOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return s.writeError(ctx, err)
		}
		status = &parsed
	}

	limit, err := queryParamInt(ctx, "limit", 0)
	if err != nil {
		return badRequest(ctx, "Invalid limit parameter")
	}

	offset, err := queryParamInt(ctx, "offset", 0)
	if err != nil {
		return badRequest(ctx, "Invalid offset parameter")
	}

	query, err := queries.NewGetOrdersQuery(status, limit, offset)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderJSON, len(orders))
	for i, o := range orders {
		response[i] = orderJSON(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	counts, err := s.countOrdersHandler.Handle(ctx.Request().Context(), queries.NewCountOrdersByStatusQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make(map[string]int, len(counts))
	for status, count := range counts {
		response[status.String()] = count
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// UpdateOrder handles PATCH /api/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return s.writeError(ctx, statusErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, req.CustomerName, req.CustomerPhone, req.DeliveryAddress, req.OrderDetails, status,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, updated.ID())
}

// AssignDriver handles PATCH /api/orders/:id/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req assignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	assigned, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, assigned.ID())
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDriver handles POST /api/drivers. Availability defaults to true.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	cmd, err := commands.NewCreateDriverCommand(req.Name, available)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, DriverJSON{
		ID:        created.ID().String(),
		Name:      created.Name(),
		Available: created.IsAvailable(),
		CreatedAt: created.CreatedAt(),
	})
}

// GetDrivers handles GET /api/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.getDriversHandler.Handle(ctx.Request().Context(), queries.NewGetDriversQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]DriverJSON, len(drivers))
	for i, d := range drivers {
		response[i] = driverJSON(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriver handles GET /api/drivers/:id.
func (s *Server) GetDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.getDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverJSON(resp))
}

// GetDriverOrders handles GET /api/drivers/:id/orders.
func (s *Server) GetDriverOrders(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByDriverQuery(driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.getOrdersByDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderJSON, len(orders))
	for i, o := range orders {
		response[i] = orderJSON(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDriver handles PATCH /api/drivers/:id.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req updateDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, req.Name, req.Available)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.updateDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DriverJSON{
		ID:        updated.ID().String(),
		Name:      updated.Name(),
		Available: updated.IsAvailable(),
		CreatedAt: updated.CreatedAt(),
	})
}

// DeleteDriver handles DELETE /api/drivers/:id. Orders referencing the driver
// keep their status and timestamps but lose the link.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.deleteDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResetData handles POST /api/data/reset.
func (s *Server) ResetData(ctx echo.Context) error {
	cmd, err := commands.NewResetDataCommand()
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.resetDataHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	observability.DataResetsTotal.Inc()

	return ctx.JSON(http.StatusOK, ResetResponse{
		DriversCreated: result.DriversCreated,
		OrdersCreated:  result.OrdersCreated,
	})
}

// Health handles GET /api/health. Always 200; the database field reports
// connectivity so dashboards can degrade gracefully.
func (s *Server) Health(ctx echo.Context) error {
	response := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC(),
	}

	if err := s.sqlDB.PingContext(ctx.Request().Context()); err != nil {
		response.Status = "degraded"
		response.Database = "disconnected"
	}

	return ctx.JSON(http.StatusOK, response)
}

func queryParamInt(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Package http exposes the fulfillment use cases over a JSON REST API.
package http

import (
	"net/http"
	"strconv"

	"pharmadelivery/internal/core/application/usecases/commands"
	"pharmadelivery/internal/core/application/usecases/queries"
	"pharmadelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler           commands.PlaceOrderCommandHandler
	transitionOrderHandler      commands.TransitionOrderCommandHandler
	claimOrderHandler           commands.ClaimOrderCommandHandler
	registerRiderHandler        commands.RegisterRiderCommandHandler
	approveRiderHandler         commands.ApproveRiderCommandHandler
	deactivateRiderHandler      commands.DeactivateRiderCommandHandler
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler

	// Query handlers
	listOrdersHandler          queries.ListOrdersQueryHandler
	listAvailableOrdersHandler queries.ListAvailableOrdersQueryHandler
	listNotificationsHandler   queries.ListNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	registerRiderHandler commands.RegisterRiderCommandHandler,
	approveRiderHandler commands.ApproveRiderCommandHandler,
	deactivateRiderHandler commands.DeactivateRiderCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listAvailableOrdersHandler queries.ListAvailableOrdersQueryHandler,
	listNotificationsHandler queries.ListNotificationsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		transitionOrderHandler:      transitionOrderHandler,
		claimOrderHandler:           claimOrderHandler,
		registerRiderHandler:        registerRiderHandler,
		approveRiderHandler:         approveRiderHandler,
		deactivateRiderHandler:      deactivateRiderHandler,
		markNotificationReadHandler: markNotificationReadHandler,
		listOrdersHandler:           listOrdersHandler,
		listAvailableOrdersHandler:  listAvailableOrdersHandler,
		listNotificationsHandler:    listNotificationsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/riders", s.RegisterRider)
	api.POST("/riders/:id/approve", s.ApproveRider)
	api.POST("/riders/:id/deactivate", s.DeactivateRider)
	api.GET("/riders/:id/orders", s.GetAvailableOrders)
	api.GET("/users/:id/notifications", s.GetNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid customer id: "+request.CustomerID)
	}
	addressID, err := kernel.UUIDFromString(request.AddressID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid address id: "+request.AddressID)
	}

	items := make([]commands.PlaceOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return respondBadRequest(ctx, "Invalid product id: "+item.ProductID)
		}
		items = append(items, commands.PlaceOrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID, addressID, items)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// TransitionOrder handles POST /api/v1/orders/:id/transition - applies one
// lifecycle action on behalf of a role.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	var request TransitionOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	role, err := commands.RoleFromString(request.Role)
	if err != nil {
		return respondError(ctx, err)
	}
	action, err := commands.ActionFromString(request.Action)
	if err != nil {
		return respondError(ctx, err)
	}

	var actorID *kernel.UUID
	if request.ActorID != nil {
		parsed, actorErr := kernel.UUIDFromString(*request.ActorID)
		if actorErr != nil {
			return respondBadRequest(ctx, "Invalid actor id: "+*request.ActorID)
		}
		actorID = &parsed
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, role, action, actorID, request.PhotoURL)
	if err != nil {
		return respondError(ctx, err)
	}

	transitioned, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(transitioned))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - a rider's attempt to
// take a ready order. Losing the race to another rider yields 409.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	var request ClaimOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(request.RiderID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid rider id: "+request.RiderID)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, riderID)
	if err != nil {
		return respondError(ctx, err)
	}

	claimed, err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(claimed))
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by customerId and archived query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var customerID *kernel.UUID
	if raw := ctx.QueryParam("customerId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid customer id: "+raw)
		}
		customerID = &parsed
	}

	var archived *bool
	if raw := ctx.QueryParam("archived"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid archived flag: "+raw)
		}
		archived = &parsed
	}

	query, err := queries.NewListOrdersQuery(customerID, archived)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = orderSummaryToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableOrders handles GET /api/v1/riders/:id/orders - the rider work
// view: unclaimed ready orders plus the rider's own active deliveries.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid rider id: "+ctx.Param("id"))
	}

	query, err := queries.NewListAvailableOrdersQuery(riderID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.listAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AvailableOrderResponse, len(rows))
	for i, row := range rows {
		response[i] = availableOrderToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterRider handles POST /api/v1/riders - registers a new rider pending
// approval.
func (s *Server) RegisterRider(ctx echo.Context) error {
	var request RegisterRiderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterRiderCommand(
		kernel.NewUUID(), request.Name, request.Phone, request.VehicleType, request.VehiclePlate)
	if err != nil {
		return respondError(ctx, err)
	}

	registered, err := s.registerRiderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, riderToResponse(registered))
}

// ApproveRider handles POST /api/v1/riders/:id/approve.
func (s *Server) ApproveRider(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid rider id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewApproveRiderCommand(riderID)
	if err != nil {
		return respondError(ctx, err)
	}

	approved, err := s.approveRiderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, riderToResponse(approved))
}

// DeactivateRider handles POST /api/v1/riders/:id/deactivate.
func (s *Server) DeactivateRider(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid rider id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewDeactivateRiderCommand(riderID)
	if err != nil {
		return respondError(ctx, err)
	}

	deactivated, err := s.deactivateRiderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, riderToResponse(deactivated))
}

// GetNotifications handles GET /api/v1/users/:id/notifications - a user's
// notification feed, newest first.
func (s *Server) GetNotifications(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid user id: "+ctx.Param("id"))
	}

	query, err := queries.NewListNotificationsQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.listNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]NotificationResponse, len(rows))
	for i, row := range rows {
		response[i] = notificationToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read - the
// recipient acknowledges a notification.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid notification id: "+ctx.Param("id"))
	}

	var request MarkNotificationReadRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user id: "+request.UserID)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Package http is the inbound HTTP adapter. It exposes the checkout,
// verification workflow and payment endpoints over echo, validates requests
// against the embedded OpenAPI contract and resolves the acting party from
// the authentication headers.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"brickmarket/internal/core/application/usecases/commands"
	"brickmarket/internal/core/application/usecases/queries"
	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/errs"
	"brickmarket/internal/pkg/idempotency"
	"brickmarket/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server handles HTTP requests of the order verification workflow.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler            commands.CheckoutCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	changePaymentStatusHandler commands.ChangePaymentStatusCommandHandler

	// Query handlers
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler

	workflowMetrics *metrics.WorkflowMetrics
	submissions     *idempotency.Store
	logger          *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The submissions store may be nil, which disables duplicate
// checkout detection.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	changePaymentStatusHandler commands.ChangePaymentStatusCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	workflowMetrics *metrics.WorkflowMetrics,
	submissions *idempotency.Store,
	logger *slog.Logger,
) *Server {
	return &Server{
		checkoutHandler:            checkoutHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		changePaymentStatusHandler: changePaymentStatusHandler,
		getOrdersHandler:           getOrdersHandler,
		getOrderDetailsHandler:     getOrderDetailsHandler,
		workflowMetrics:            workflowMetrics,
		submissions:                submissions,
		logger:                     logger,
	}
}

// RegisterRoutes attaches all routes to the echo instance. API routes require
// an authenticated actor and must satisfy the OpenAPI contract; health,
// metrics and swagger stay outside both.
func (s *Server) RegisterRoutes(e *echo.Echo) error {
	validator, err := newContractValidator()
	if err != nil {
		return err
	}

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.workflowMetrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validator, ActorMiddleware())
	api.POST("/checkout", s.Checkout)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrderDetails)
	api.PATCH("/orders/:orderId/status", s.ChangeOrderStatus)
	api.PATCH("/orders/:orderId/payment", s.ChangePaymentStatus)

	return nil
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Checkout handles POST /api/v1/checkout - splits the cart into one order
// per seller and persists each group independently.
//
//	@Summary		Check out a cart
//	@Description	Splits the cart into one order per seller. Groups succeed or fail independently; the response reports every group.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CheckoutRequest	true	"Cart to check out"
//	@Success		201		{object}	CheckoutResponse
//	@Success		207		{object}	CheckoutResponse
//	@Failure		400		{object}	Error
//	@Failure		409		{object}	Error
//	@Router			/checkout [post]
func (s *Server) Checkout(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "authentication required",
		})
	}

	if actor.Role() != order.RoleCustomer {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "only customers can check out",
		})
	}

	var request CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toCartItems(request.Items)
	if err != nil {
		return s.writeError(ctx, err)
	}

	address, err := toDeliveryAddress(request.DeliveryAddress)
	if err != nil {
		return s.writeError(ctx, err)
	}

	method, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCheckoutCommand(actor.ID(), items, address, method)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if duplicate := s.rejectDuplicateSubmission(ctx, actor); duplicate != nil {
		return duplicate
	}

	results, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, failed := 0, 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			continue
		}

		created++
		s.workflowMetrics.OrderCreated(method.String())
	}
	if failed > 0 {
		s.workflowMetrics.CheckoutPartialFailure()
	}

	response := toCheckoutResponse(results)
	switch {
	case failed == 0:
		return ctx.JSON(http.StatusCreated, response)
	case created == 0:
		return ctx.JSON(http.StatusBadGateway, response)
	default:
		return ctx.JSON(http.StatusMultiStatus, response)
	}
}

// rejectDuplicateSubmission enforces the Idempotency-Key header when a
// submissions store is configured. An unavailable store lets the checkout
// proceed; a repeated key returns the conflict response.
func (s *Server) rejectDuplicateSubmission(ctx echo.Context, actor order.Actor) error {
	if s.submissions == nil {
		return nil
	}

	requestKey := idempotency.KeyFromRequest(ctx.Request())
	if requestKey == "" {
		return nil
	}

	seen, err := s.submissions.Seen(ctx.Request().Context(), s.submissions.Key(actor.ID().String(), requestKey))
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(),
			"Submission store unavailable, accepting checkout", "error", err)
		return nil
	}

	if seen {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "duplicate checkout submission",
		})
	}

	return nil
}

// GetOrders handles GET /api/v1/orders - lists the orders visible to the
// caller.
//
//	@Summary		List orders
//	@Description	Lists orders scoped by role: customers see their purchases, sellers their sales, admins everything.
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		OrderSummary
//	@Failure		401	{object}	Error
//	@Router			/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "authentication required",
		})
	}

	query, err := queries.NewGetOrdersQuery(actor.ID(), actor.Role())
	if err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderSummary, len(rows))
	for i, row := range rows {
		response[i] = toOrderSummary(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderDetails handles GET /api/v1/orders/:orderId - retrieves one order
// with line items, totals and the full status trail.
//
//	@Summary		Get order details
//	@Description	Returns one order with line items, totals and history. Orders outside the caller's scope are reported as not found.
//	@Tags			orders
//	@Produce		json
//	@Param			orderId	path		string	true	"Order ID"
//	@Success		200		{object}	OrderDetails
//	@Failure		404		{object}	Error
//	@Router			/orders/{orderId} [get]
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "authentication required",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID, actor.ID(), actor.Role())
	if err != nil {
		return s.writeError(ctx, err)
	}

	detail, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetails(detail))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:orderId/status - applies
// one workflow transition to an order.
//
//	@Summary		Change order status
//	@Description	Applies one transition of the verification workflow. The transition table decides which roles may move an order between which statuses.
//	@Tags			orders
//	@Accept			json
//	@Param			orderId	path	string				true	"Order ID"
//	@Param			request	body	ChangeStatusRequest	true	"Requested transition"
//	@Success		204
//	@Failure		403	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		409	{object}	Error
//	@Failure		422	{object}	Error
//	@Router			/orders/{orderId}/status [patch]
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "authentication required",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var request ChangeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actor.ID(), actor.Role(), order.TransitionRequest{
		To:             target,
		SellerResponse: request.SellerResponse,
		BuyerResponse:  request.BuyerResponse,
		RejectReason:   request.RejectReason,
		Note:           request.Note,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrVersionIsInvalid) {
			s.workflowMetrics.TransitionConflict()
		}
		return s.writeError(ctx, handleErr)
	}

	s.workflowMetrics.TransitionApplied(target.String())

	return ctx.NoContent(http.StatusNoContent)
}

// ChangePaymentStatus handles PATCH /api/v1/orders/:orderId/payment - records
// an external payment outcome on an order.
//
//	@Summary		Change payment status
//	@Description	Records the outcome reported by the payment collaborator. Does not touch the workflow status.
//	@Tags			orders
//	@Accept			json
//	@Param			orderId	path	string						true	"Order ID"
//	@Param			request	body	ChangePaymentStatusRequest	true	"Reported payment status"
//	@Success		204
//	@Failure		403	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/orders/{orderId}/payment [patch]
func (s *Server) ChangePaymentStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "authentication required",
		})
	}

	if actor.Role() != order.RoleAdmin {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "only admins can record payment outcomes",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var request ChangePaymentStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	paymentStatus, err := order.PaymentStatusFromString(request.PaymentStatus)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangePaymentStatusCommand(orderID, paymentStatus)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.changePaymentStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

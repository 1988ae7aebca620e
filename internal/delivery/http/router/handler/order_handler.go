package handler

import (
	"log/slog"
	"net/http"

	"venturesroom/internal/delivery/http/middleware"
	"venturesroom/internal/delivery/http/response"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for placing an order.
type CreateOrderRequest struct {
	ProductIDs []uuid.UUID `json:"productIds" validate:"required,min=1"`
}

// Create places a pending order for the authenticated client.
func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.orderUC.Create(c.Request().Context(), middleware.ActorID(c), usecase.CreateOrderInput{
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

// ListMine returns the authenticated client's orders.
func (h *OrderHandler) ListMine(c echo.Context) error {
	orders, err := h.orderUC.ListMine(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

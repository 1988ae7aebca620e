package handler

import (
	"log/slog"
	"net/http"
	"time"

	"venturesroom/internal/delivery/http/middleware"
	"venturesroom/internal/delivery/http/response"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DiscountHandlerParams holds dependencies for DiscountHandler, injected by Fx.
type DiscountHandlerParams struct {
	fx.In

	DiscountUC usecase.DiscountUsecase
	Logger     *slog.Logger
}

// DiscountHandler holds dependencies for discount-related handlers.
type DiscountHandler struct {
	discountUC usecase.DiscountUsecase
	logger     *slog.Logger
}

// NewDiscountHandler is the constructor for DiscountHandler.
func NewDiscountHandler(params DiscountHandlerParams) *DiscountHandler {
	return &DiscountHandler{
		discountUC: params.DiscountUC,
		logger:     params.Logger,
	}
}

// CreateDiscountRequest represents the request body for creating a discount.
type CreateDiscountRequest struct {
	ProductID  uuid.UUID       `json:"productId" validate:"required"`
	Percentage decimal.Decimal `json:"percentage"`
	StartsAt   time.Time       `json:"startsAt" validate:"required"`
	EndsAt     time.Time       `json:"endsAt" validate:"required"`
}

// Create adds a discount to one of the caller's products.
func (h *DiscountHandler) Create(c echo.Context) error {
	var req CreateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	discount, err := h.discountUC.Create(c.Request().Context(), middleware.ActorID(c), usecase.CreateDiscountInput{
		ProductID:  req.ProductID,
		Percentage: req.Percentage,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, discount, "Discount created")
}

// List returns the caller's discounts.
func (h *DiscountHandler) List(c echo.Context) error {
	discounts, err := h.discountUC.ListMine(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, discounts, "")
}

// Delete removes one owned discount.
func (h *DiscountHandler) Delete(c echo.Context) error {
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid discount id")
	}

	if err := h.discountUC.Delete(c.Request().Context(), middleware.ActorID(c), discountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Discount deleted")
}

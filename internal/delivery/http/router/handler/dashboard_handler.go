package handler

import (
	"log/slog"
	"net/http"

	"venturesroom/internal/delivery/http/middleware"
	"venturesroom/internal/delivery/http/response"
	"venturesroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler holds dependencies for dashboard-related handlers.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// Orders returns the orders touching the caller's startup.
func (h *DashboardHandler) Orders(c echo.Context) error {
	orders, err := h.dashboardUC.GetOrders(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Customers returns per-purchaser aggregates for the caller's startup.
func (h *DashboardHandler) Customers(c echo.Context) error {
	customers, err := h.dashboardUC.GetCustomers(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "")
}

// KPIs returns the headline figures for the caller's startup.
func (h *DashboardHandler) KPIs(c echo.Context) error {
	report, err := h.dashboardUC.GetKPIs(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

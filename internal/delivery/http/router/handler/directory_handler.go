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

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// DirectoryHandler holds dependencies for the public directory and the
// support-link workflow.
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler.
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// RespondSupportRequest represents the decision body for a support request.
type RespondSupportRequest struct {
	Approve bool `json:"approve"`
}

// ListStartups returns every startup.
func (h *DirectoryHandler) ListStartups(c echo.Context) error {
	startups, err := h.directoryUC.ListStartups(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, startups, "")
}

// ListStructures returns every support structure.
func (h *DirectoryHandler) ListStructures(c echo.Context) error {
	structures, err := h.directoryUC.ListStructures(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, structures, "")
}

// RequestSupport lets the authenticated structure owner offer support to a
// startup.
func (h *DirectoryHandler) RequestSupport(c echo.Context) error {
	startupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid startup id")
	}

	link, err := h.directoryUC.RequestSupport(c.Request().Context(), middleware.ActorID(c), startupID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Support requested")
}

// RespondSupport lets the targeted startup owner decide a pending request.
func (h *DirectoryHandler) RespondSupport(c echo.Context) error {
	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid support request id")
	}

	var req RespondSupportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	link, err := h.directoryUC.RespondSupport(c.Request().Context(), middleware.ActorID(c), linkID, req.Approve)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, link, "Support request decided")
}

// ListSupportStructures returns the structures linked to the caller's
// startup with link status.
func (h *DirectoryHandler) ListSupportStructures(c echo.Context) error {
	links, err := h.directoryUC.ListSupportStructures(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, links, "")
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// DashboardHandler serves the authenticated admin dashboard. Routes are
// mounted behind RequireSession + RequireRole(admin); the handler body runs
// with a guaranteed Principal.
type DashboardHandler struct {
	service ports.DashboardService
	log     zerolog.Logger
}

func NewDashboardHandler(service ports.DashboardService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, log: log}
}

type settingsResponse struct {
	Settings *domain.Settings `json:"settings"`
	Stats    *domain.Stats    `json:"stats"`
}

type updateSettingsRequest struct {
	Settings domain.Settings `json:"settings"`
}

type updateSettingsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetSettings handles GET /api/dashboard/settings.
//
// @Summary      Current settings and site stats
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  settingsResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/dashboard/settings [get]
func (h *DashboardHandler) GetSettings(c echo.Context) error {
	settings, stats, err := h.service.Overview(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("dashboard overview failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, settingsResponse{Settings: settings, Stats: stats})
}

// UpdateSettings handles PUT /api/dashboard/settings. A malformed body
// answers 500, matching the established wire contract of this endpoint.
//
// @Summary      Update settings
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      updateSettingsRequest  true  "New settings"
// @Success      200   {object}  updateSettingsResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/dashboard/settings [put]
func (h *DashboardHandler) UpdateSettings(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	message, err := h.service.UpdateSettings(c.Request().Context(), req.Settings)
	if err != nil {
		h.log.Error().Err(err).Msg("settings update failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, updateSettingsResponse{Success: true, Message: message})
}

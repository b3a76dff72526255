package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// AffiliateHandler serves the affiliate resources listing.
type AffiliateHandler struct {
	service ports.AffiliateService
	log     zerolog.Logger
}

func NewAffiliateHandler(service ports.AffiliateService, log zerolog.Logger) *AffiliateHandler {
	return &AffiliateHandler{service: service, log: log}
}

type affiliatesResponse struct {
	Affiliates []domain.AffiliateResource `json:"affiliates"`
}

// List handles GET /api/affiliates. A store failure answers 500; this
// endpoint has no fallback.
//
// @Summary      List affiliate resources
// @Tags         affiliates
// @Produce      json
// @Param        limit     query     int     false  "Max results, clamped to 50 (default 10)"
// @Param        category  query     string  false  "Filter by category"
// @Param        featured  query     bool    false  "Filter by featured flag"
// @Success      200       {object}  affiliatesResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/affiliates [get]
func (h *AffiliateHandler) List(c echo.Context) error {
	q := ports.AffiliateQuery{
		Category: c.QueryParam("category"),
		Limit:    clampLimit(c.QueryParam("limit")),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			q.Featured = &featured
		}
	}

	affiliates, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		h.log.Error().Err(err).Msg("affiliates request failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, affiliatesResponse{Affiliates: affiliates})
}

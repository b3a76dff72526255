package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/api/metrics"
	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// NewsletterHandler handles newsletter signups. Outbound email is someone
// else's job; this endpoint only maintains the subscriber list.
type NewsletterHandler struct {
	service ports.NewsletterService
	log     zerolog.Logger
}

func NewNewsletterHandler(service ports.NewsletterService, log zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{service: service, log: log}
}

type subscribeRequest struct {
	Email  string `json:"email"  validate:"required,email"`
	Source string `json:"source"`
}

type subscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subscribe handles POST /api/newsletter.
//
// @Summary      Subscribe to the newsletter
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body  body      subscribeRequest  true  "Subscriber email"
// @Success      200   {object}  subscribeResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/newsletter [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	err := h.service.Subscribe(c.Request().Context(), req.Email, req.Source)
	if errors.Is(err, domain.ErrAlreadySubscribed) {
		metrics.NewsletterSignupsTotal.WithLabelValues("duplicate").Inc()
		return c.JSON(http.StatusOK, subscribeResponse{Success: true, Message: "Vous êtes déjà inscrit"})
	}
	if err != nil {
		metrics.NewsletterSignupsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("newsletter signup failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	metrics.NewsletterSignupsTotal.WithLabelValues("subscribed").Inc()
	return c.JSON(http.StatusOK, subscribeResponse{Success: true, Message: "Inscription réussie"})
}

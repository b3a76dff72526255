package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// CategoryHandler serves the category navigation.
type CategoryHandler struct {
	content ports.ContentService
}

func NewCategoryHandler(content ports.ContentService) *CategoryHandler {
	return &CategoryHandler{content: content}
}

type categoriesResponse struct {
	Categories []domain.CategoryWithCount `json:"categories"`
}

// List handles GET /api/categories. It never fails outward: when the store
// errors or is empty the service substitutes the static fallback set.
//
// @Summary      List categories with article counts
// @Tags         categories
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories := h.content.Categories(c.Request().Context())
	return c.JSON(http.StatusOK, categoriesResponse{Categories: categories})
}

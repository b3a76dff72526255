package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// ViewDispatcher is the interface the handler uses to enqueue page views.
type ViewDispatcher interface {
	Enqueue(view ports.PageView)
}

// ArticleHandler serves article listings and single articles.
type ArticleHandler struct {
	content    ports.ContentService
	dispatcher ViewDispatcher
}

func NewArticleHandler(content ports.ContentService, dispatcher ViewDispatcher) *ArticleHandler {
	return &ArticleHandler{content: content, dispatcher: dispatcher}
}

type articlesResponse struct {
	Articles []domain.Article `json:"articles"`
}

type articleResponse struct {
	Article *domain.Article `json:"article"`
}

// List handles GET /api/articles. Store failures and empty results fall back
// to the static dataset, so this endpoint never fails outward.
//
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Param        limit     query     int     false  "Max results, clamped to 50 (default 10)"
// @Param        category  query     string  false  "Filter by category slug"
// @Success      200       {object}  articlesResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	q := ports.ArticleQuery{
		CategorySlug: c.QueryParam("category"),
		Limit:        clampLimit(c.QueryParam("limit")),
	}

	articles := h.content.Articles(c.Request().Context(), q)
	return c.JSON(http.StatusOK, articlesResponse{Articles: articles})
}

// Get handles GET /api/articles/:slug and records the read asynchronously.
//
// @Summary      Get one article by slug
// @Tags         articles
// @Produce      json
// @Param        slug  path      string  true  "Article slug"
// @Success      200   {object}  articleResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/articles/{slug} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	slug := c.Param("slug")

	article, err := h.content.ArticleBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "article not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	if h.dispatcher != nil {
		h.dispatcher.Enqueue(ports.PageView{Slug: slug, At: time.Now().UTC()})
	}

	return c.JSON(http.StatusOK, articleResponse{Article: article})
}

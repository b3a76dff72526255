package ports

import (
	"context"

	"github.com/iapourpme/content-api/internal/core/domain"
)

// ContentService serves the public navigational content. Categories and
// Articles substitute the static fallback dataset when the live store errors
// or comes back empty, so the site never renders an empty shell.
type ContentService interface {
	Categories(ctx context.Context) []domain.CategoryWithCount
	Articles(ctx context.Context, q ArticleQuery) []domain.Article
	ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
}

// AffiliateService lists affiliate resources. Unlike ContentService it
// propagates store errors: the affiliates endpoint fails hard.
type AffiliateService interface {
	List(ctx context.Context, q AffiliateQuery) ([]domain.AffiliateResource, error)
}

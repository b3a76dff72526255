package ports

import (
	"context"

	"github.com/iapourpme/content-api/internal/core/domain"
)

// ArticleQuery carries the optional filters of a listing request. A zero
// CategorySlug means no category filter; Limit must already be clamped by
// the caller.
type ArticleQuery struct {
	CategorySlug string
	Limit        int
}

// ArticleRepository is the data-access contract for published articles.
// Implementations signal failure through the error return, never by panicking.
type ArticleRepository interface {
	List(ctx context.Context, q ArticleQuery) ([]domain.Article, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository lists categories together with their article counts.
type CategoryRepository interface {
	ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error)
	Count(ctx context.Context) (int64, error)
}

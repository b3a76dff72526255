package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/api/metrics"
	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/fallback"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// ContentService serves categories and articles with the availability-first
// policy: when the live store errors or returns an empty set where content is
// expected, the static fallback dataset is substituted so the public site
// never renders empty.
type ContentService struct {
	articles   ports.ArticleRepository
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewContentService(articles ports.ArticleRepository, categories ports.CategoryRepository, log zerolog.Logger) *ContentService {
	return &ContentService{articles: articles, categories: categories, log: log}
}

func (s *ContentService) Categories(ctx context.Context) []domain.CategoryWithCount {
	cats, err := s.categories.ListWithCounts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("category listing failed, serving fallback")
		metrics.ContentFallbackTotal.WithLabelValues("categories").Inc()
		return fallback.CategoriesWithCounts()
	}
	if len(cats) == 0 {
		s.log.Warn().Msg("category listing empty, serving fallback")
		metrics.ContentFallbackTotal.WithLabelValues("categories").Inc()
		return fallback.CategoriesWithCounts()
	}
	return cats
}

func (s *ContentService) Articles(ctx context.Context, q ports.ArticleQuery) []domain.Article {
	arts, err := s.articles.List(ctx, q)
	if err != nil {
		s.log.Error().Err(err).Str("category", q.CategorySlug).Msg("article listing failed, serving fallback")
		metrics.ContentFallbackTotal.WithLabelValues("articles").Inc()
		return fallback.Articles(q.CategorySlug, q.Limit)
	}
	if len(arts) == 0 {
		metrics.ContentFallbackTotal.WithLabelValues("articles").Inc()
		return fallback.Articles(q.CategorySlug, q.Limit)
	}
	return arts
}

// ArticleBySlug reads the live store first and the fallback dataset second.
// Only a slug unknown to both yields ErrArticleNotFound.
func (s *ContentService) ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.articles.FindBySlug(ctx, slug)
	if err == nil {
		return article, nil
	}

	if art := fallback.ArticleBySlug(slug); art != nil {
		metrics.ContentFallbackTotal.WithLabelValues("article").Inc()
		return art, nil
	}
	return nil, domain.ErrArticleNotFound
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

type stubArticleRepo struct {
	listFn   func(ctx context.Context, q ports.ArticleQuery) ([]domain.Article, error)
	bySlugFn func(ctx context.Context, slug string) (*domain.Article, error)
}

func (s *stubArticleRepo) List(ctx context.Context, q ports.ArticleQuery) ([]domain.Article, error) {
	return s.listFn(ctx, q)
}

func (s *stubArticleRepo) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return s.bySlugFn(ctx, slug)
}

func (s *stubArticleRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type stubCategoryRepo struct {
	listFn func(ctx context.Context) ([]domain.CategoryWithCount, error)
}

func (s *stubCategoryRepo) ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	return s.listFn(ctx)
}

func (s *stubCategoryRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func TestContentService_Categories_Live(t *testing.T) {
	cats := &stubCategoryRepo{
		listFn: func(ctx context.Context) ([]domain.CategoryWithCount, error) {
			return []domain.CategoryWithCount{
				{Category: domain.Category{Slug: "live"}, ArticleCount: 7},
			}, nil
		},
	}
	svc := NewContentService(&stubArticleRepo{}, cats, zerolog.Nop())

	got := svc.Categories(context.Background())
	if len(got) != 1 || got[0].Slug != "live" {
		t.Fatalf("expected live data, got %+v", got)
	}
}

func TestContentService_Categories_FallbackOnError(t *testing.T) {
	cats := &stubCategoryRepo{
		listFn: func(ctx context.Context) ([]domain.CategoryWithCount, error) {
			return nil, errors.New("store down")
		},
	}
	svc := NewContentService(&stubArticleRepo{}, cats, zerolog.Nop())

	got := svc.Categories(context.Background())
	if len(got) == 0 {
		t.Fatalf("store failure must yield the fallback set, got nothing")
	}
	for _, c := range got {
		if c.Slug == "" || c.Name == "" {
			t.Fatalf("fallback category incomplete: %+v", c)
		}
	}
}

func TestContentService_Categories_FallbackOnEmpty(t *testing.T) {
	cats := &stubCategoryRepo{
		listFn: func(ctx context.Context) ([]domain.CategoryWithCount, error) {
			return []domain.CategoryWithCount{}, nil
		},
	}
	svc := NewContentService(&stubArticleRepo{}, cats, zerolog.Nop())

	if got := svc.Categories(context.Background()); len(got) == 0 {
		t.Fatalf("empty store result must yield the fallback set")
	}
}

// Two identical requests must report identical counts.
func TestContentService_Categories_CountsAreStable(t *testing.T) {
	cats := &stubCategoryRepo{
		listFn: func(ctx context.Context) ([]domain.CategoryWithCount, error) {
			return nil, errors.New("store down")
		},
	}
	svc := NewContentService(&stubArticleRepo{}, cats, zerolog.Nop())

	first := svc.Categories(context.Background())
	second := svc.Categories(context.Background())
	if len(first) != len(second) {
		t.Fatalf("category set changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Slug != second[i].Slug || first[i].ArticleCount != second[i].ArticleCount {
			t.Fatalf("count drift for %s: %d vs %d",
				first[i].Slug, first[i].ArticleCount, second[i].ArticleCount)
		}
	}
}

func TestContentService_Articles_FallbackOnError(t *testing.T) {
	arts := &stubArticleRepo{
		listFn: func(ctx context.Context, q ports.ArticleQuery) ([]domain.Article, error) {
			return nil, errors.New("store down")
		},
	}
	svc := NewContentService(arts, &stubCategoryRepo{}, zerolog.Nop())

	got := svc.Articles(context.Background(), ports.ArticleQuery{CategorySlug: "marketing", Limit: 2})
	if len(got) == 0 || len(got) > 2 {
		t.Fatalf("expected at most 2 fallback articles, got %d", len(got))
	}
	for _, a := range got {
		if a.CategorySlug != "marketing" {
			t.Fatalf("fallback ignored the category filter: %+v", a)
		}
	}
}

func TestContentService_Articles_FallbackOnEmpty(t *testing.T) {
	arts := &stubArticleRepo{
		listFn: func(ctx context.Context, q ports.ArticleQuery) ([]domain.Article, error) {
			return nil, nil
		},
	}
	svc := NewContentService(arts, &stubCategoryRepo{}, zerolog.Nop())

	if got := svc.Articles(context.Background(), ports.ArticleQuery{Limit: 10}); len(got) == 0 {
		t.Fatalf("empty store result must yield fallback articles")
	}
}

func TestContentService_ArticleBySlug_FallbackThenNotFound(t *testing.T) {
	arts := &stubArticleRepo{
		bySlugFn: func(ctx context.Context, slug string) (*domain.Article, error) {
			return nil, domain.ErrArticleNotFound
		},
	}
	svc := NewContentService(arts, &stubCategoryRepo{}, zerolog.Nop())

	// Known to the fallback dataset.
	art, err := svc.ArticleBySlug(context.Background(), "rediger-ses-posts-linkedin-avec-l-ia")
	if err != nil || art == nil {
		t.Fatalf("expected fallback article, got %v, %v", art, err)
	}

	// Unknown everywhere.
	if _, err := svc.ArticleBySlug(context.Background(), "inconnu"); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

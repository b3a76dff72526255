package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

type stubSettingsRepo struct {
	getFn func(ctx context.Context) (*domain.Settings, error)
}

func (s *stubSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	return s.getFn(ctx)
}

type countingArticleRepo struct {
	stubArticleRepo
	count int64
	err   error
}

func (r *countingArticleRepo) Count(ctx context.Context) (int64, error) { return r.count, r.err }

type countingCategoryRepo struct {
	stubCategoryRepo
	count int64
}

func (r *countingCategoryRepo) Count(ctx context.Context) (int64, error) { return r.count, nil }

type countingAffiliateRepo struct {
	count int64
}

func (r *countingAffiliateRepo) List(ctx context.Context, q ports.AffiliateQuery) ([]domain.AffiliateResource, error) {
	return nil, nil
}

func (r *countingAffiliateRepo) Count(ctx context.Context) (int64, error) { return r.count, nil }

type countingSubscriberRepo struct {
	stubSubscriberRepo
	count int64
}

func (r *countingSubscriberRepo) Count(ctx context.Context) (int64, error) { return r.count, nil }

type stubStatsRepo struct {
	total int64
	incFn func(ctx context.Context, slug string, at time.Time) error
}

func (r *stubStatsRepo) IncrementViews(ctx context.Context, slug string, at time.Time) error {
	if r.incFn != nil {
		return r.incFn(ctx, slug, at)
	}
	return nil
}

func (r *stubStatsRepo) TotalViews(ctx context.Context) (int64, error) { return r.total, nil }

func TestDashboardService_Overview(t *testing.T) {
	settings := &stubSettingsRepo{
		getFn: func(ctx context.Context) (*domain.Settings, error) {
			return &domain.Settings{SiteName: "IA pour les PME"}, nil
		},
	}
	svc := NewDashboardService(
		settings,
		&countingArticleRepo{count: 12},
		&countingCategoryRepo{count: 5},
		&countingAffiliateRepo{count: 8},
		&countingSubscriberRepo{count: 130},
		&stubStatsRepo{total: 3400},
		zerolog.Nop(),
	)

	got, stats, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if got.SiteName != "IA pour les PME" {
		t.Fatalf("unexpected settings: %+v", got)
	}
	want := domain.Stats{
		TotalArticles:    12,
		TotalCategories:  5,
		TotalAffiliates:  8,
		TotalSubscribers: 130,
		TotalViews:       3400,
	}
	if *stats != want {
		t.Fatalf("stats = %+v, want %+v", *stats, want)
	}
}

func TestDashboardService_Overview_DefaultsMissingSettings(t *testing.T) {
	settings := &stubSettingsRepo{
		getFn: func(ctx context.Context) (*domain.Settings, error) {
			return nil, domain.ErrSettingsNotFound
		},
	}
	svc := NewDashboardService(
		settings,
		&countingArticleRepo{},
		&countingCategoryRepo{},
		&countingAffiliateRepo{},
		&countingSubscriberRepo{},
		&stubStatsRepo{},
		zerolog.Nop(),
	)

	got, _, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("missing settings must fall back to defaults: %v", err)
	}
	defaults := domain.DefaultSettings()
	if got.SiteName != defaults.SiteName {
		t.Fatalf("expected default settings, got %+v", got)
	}
}

func TestDashboardService_Overview_PropagatesStoreErrors(t *testing.T) {
	settings := &stubSettingsRepo{
		getFn: func(ctx context.Context) (*domain.Settings, error) {
			return &domain.Settings{}, nil
		},
	}
	svc := NewDashboardService(
		settings,
		&countingArticleRepo{err: errors.New("store down")},
		&countingCategoryRepo{},
		&countingAffiliateRepo{},
		&countingSubscriberRepo{},
		&stubStatsRepo{},
		zerolog.Nop(),
	)

	if _, _, err := svc.Overview(context.Background()); err == nil {
		t.Fatalf("admin overview must surface store errors")
	}
}

func TestDashboardService_UpdateSettings(t *testing.T) {
	svc := NewDashboardService(
		&stubSettingsRepo{},
		&countingArticleRepo{},
		&countingCategoryRepo{},
		&countingAffiliateRepo{},
		&countingSubscriberRepo{},
		&stubStatsRepo{},
		zerolog.Nop(),
	)

	msg, err := svc.UpdateSettings(context.Background(), domain.Settings{SiteName: "Nouveau"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if msg != "Paramètres mis à jour" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestViewService_Process(t *testing.T) {
	var gotSlug string
	stats := &stubStatsRepo{
		incFn: func(ctx context.Context, slug string, at time.Time) error {
			gotSlug = slug
			return nil
		},
	}
	svc := NewViewService(stats, zerolog.Nop())

	view := ports.PageView{Slug: "mon-article", At: time.Now().UTC()}
	if err := svc.Process(context.Background(), view); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if gotSlug != "mon-article" {
		t.Fatalf("counter incremented for %q", gotSlug)
	}

	if err := svc.Process(context.Background(), ports.PageView{}); err == nil {
		t.Fatalf("empty slug must be rejected")
	}
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// DashboardService aggregates the admin overview. Unlike the public content
// endpoints it reports store failures instead of masking them: an admin needs
// to see that the store is down.
type DashboardService struct {
	settings    ports.SettingsRepository
	articles    ports.ArticleRepository
	categories  ports.CategoryRepository
	affiliates  ports.AffiliateRepository
	subscribers ports.SubscriberRepository
	stats       ports.StatsRepository
	log         zerolog.Logger
}

func NewDashboardService(
	settings ports.SettingsRepository,
	articles ports.ArticleRepository,
	categories ports.CategoryRepository,
	affiliates ports.AffiliateRepository,
	subscribers ports.SubscriberRepository,
	stats ports.StatsRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		settings:    settings,
		articles:    articles,
		categories:  categories,
		affiliates:  affiliates,
		subscribers: subscribers,
		stats:       stats,
		log:         log,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (*domain.Settings, *domain.Stats, error) {
	settings, err := s.settings.Get(ctx)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		defaults := domain.DefaultSettings()
		settings = &defaults
	} else if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}

	stats := &domain.Stats{}
	if stats.TotalArticles, err = s.articles.Count(ctx); err != nil {
		return nil, nil, fmt.Errorf("count articles: %w", err)
	}
	if stats.TotalCategories, err = s.categories.Count(ctx); err != nil {
		return nil, nil, fmt.Errorf("count categories: %w", err)
	}
	if stats.TotalAffiliates, err = s.affiliates.Count(ctx); err != nil {
		return nil, nil, fmt.Errorf("count affiliates: %w", err)
	}
	if stats.TotalSubscribers, err = s.subscribers.Count(ctx); err != nil {
		return nil, nil, fmt.Errorf("count subscribers: %w", err)
	}
	if stats.TotalViews, err = s.stats.TotalViews(ctx); err != nil {
		return nil, nil, fmt.Errorf("sum views: %w", err)
	}

	return settings, stats, nil
}

// UpdateSettings acknowledges the payload without writing it.
// TODO: persist to the settings collection once the settings schema is frozen.
func (s *DashboardService) UpdateSettings(ctx context.Context, settings domain.Settings) (string, error) {
	s.log.Info().
		Str("site_name", settings.SiteName).
		Str("contact_email", settings.ContactEmail).
		Bool("maintenance_mode", settings.MaintenanceMode).
		Msg("settings update received")

	return "Paramètres mis à jour", nil
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/core/ports"
)

// ViewService persists page views dequeued by the dispatcher workers.
type ViewService struct {
	stats ports.StatsRepository
	log   zerolog.Logger
}

func NewViewService(stats ports.StatsRepository, log zerolog.Logger) *ViewService {
	return &ViewService{stats: stats, log: log}
}

func (s *ViewService) Process(ctx context.Context, view ports.PageView) error {
	if view.Slug == "" {
		return fmt.Errorf("process view: empty slug")
	}
	if err := s.stats.IncrementViews(ctx, view.Slug, view.At); err != nil {
		return fmt.Errorf("process view: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// AffiliateService lists affiliate resources. No fallback here: a store
// error propagates and the endpoint answers 500.
type AffiliateService struct {
	repo ports.AffiliateRepository
	log  zerolog.Logger
}

func NewAffiliateService(repo ports.AffiliateRepository, log zerolog.Logger) *AffiliateService {
	return &AffiliateService{repo: repo, log: log}
}

func (s *AffiliateService) List(ctx context.Context, q ports.AffiliateQuery) ([]domain.AffiliateResource, error) {
	resources, err := s.repo.List(ctx, q)
	if err != nil {
		s.log.Error().Err(err).Str("category", q.Category).Msg("affiliate listing failed")
		return nil, fmt.Errorf("list affiliates: %w", err)
	}
	if resources == nil {
		resources = []domain.AffiliateResource{}
	}
	return resources, nil
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// NewsletterService handles signups: a cheap dedup check first, then the
// primary insert, then the dedup mark. A dedup-store outage degrades to
// relying on the unique index of the primary store.
type NewsletterService struct {
	repo  ports.SubscriberRepository
	dedup ports.SubscriberDedup
	log   zerolog.Logger
}

func NewNewsletterService(repo ports.SubscriberRepository, dedup ports.SubscriberDedup, log zerolog.Logger) *NewsletterService {
	return &NewsletterService{repo: repo, dedup: dedup, log: log}
}

func (s *NewsletterService) Subscribe(ctx context.Context, email, source string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	seen, err := s.dedup.IsSubscribed(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("newsletter dedup check failed, falling through to store")
	} else if seen {
		return domain.ErrAlreadySubscribed
	}

	sub := &domain.Subscriber{
		Email:        email,
		Source:       source,
		SubscribedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, sub); err != nil {
		return err
	}

	if err := s.dedup.Mark(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to set newsletter dedup key")
	}

	s.log.Info().Str("source", source).Msg("newsletter signup")
	return nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/core/domain"
)

type stubSubscriberRepo struct {
	insertFn func(ctx context.Context, sub *domain.Subscriber) error
	inserts  int
}

func (s *stubSubscriberRepo) Insert(ctx context.Context, sub *domain.Subscriber) error {
	s.inserts++
	return s.insertFn(ctx, sub)
}

func (s *stubSubscriberRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type stubDedup struct {
	isFn   func(ctx context.Context, email string) (bool, error)
	marked []string
}

func (s *stubDedup) IsSubscribed(ctx context.Context, email string) (bool, error) {
	return s.isFn(ctx, email)
}

func (s *stubDedup) Mark(ctx context.Context, email string) error {
	s.marked = append(s.marked, email)
	return nil
}

func TestNewsletterService_Subscribe(t *testing.T) {
	repo := &stubSubscriberRepo{
		insertFn: func(ctx context.Context, sub *domain.Subscriber) error {
			if sub.Email != "marie@exemple.fr" {
				t.Fatalf("email not normalised: %q", sub.Email)
			}
			if sub.SubscribedAt.IsZero() {
				t.Fatalf("subscribedAt not set")
			}
			return nil
		},
	}
	dedup := &stubDedup{
		isFn: func(ctx context.Context, email string) (bool, error) { return false, nil },
	}
	svc := NewNewsletterService(repo, dedup, zerolog.Nop())

	if err := svc.Subscribe(context.Background(), "  Marie@Exemple.FR ", "footer"); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if len(dedup.marked) != 1 || dedup.marked[0] != "marie@exemple.fr" {
		t.Fatalf("dedup key not marked: %v", dedup.marked)
	}
}

func TestNewsletterService_Subscribe_KnownDuplicate(t *testing.T) {
	repo := &stubSubscriberRepo{
		insertFn: func(ctx context.Context, sub *domain.Subscriber) error { return nil },
	}
	dedup := &stubDedup{
		isFn: func(ctx context.Context, email string) (bool, error) { return true, nil },
	}
	svc := NewNewsletterService(repo, dedup, zerolog.Nop())

	err := svc.Subscribe(context.Background(), "marie@exemple.fr", "footer")
	if !errors.Is(err, domain.ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
	if repo.inserts != 0 {
		t.Fatalf("a known duplicate must not reach the primary store")
	}
}

func TestNewsletterService_Subscribe_DedupOutage(t *testing.T) {
	repo := &stubSubscriberRepo{
		insertFn: func(ctx context.Context, sub *domain.Subscriber) error { return nil },
	}
	dedup := &stubDedup{
		isFn: func(ctx context.Context, email string) (bool, error) {
			return false, errors.New("dedup store down")
		},
	}
	svc := NewNewsletterService(repo, dedup, zerolog.Nop())

	// A dedup outage degrades to the primary store's unique index.
	if err := svc.Subscribe(context.Background(), "marie@exemple.fr", "footer"); err != nil {
		t.Fatalf("subscribe must survive a dedup outage: %v", err)
	}
	if repo.inserts != 1 {
		t.Fatalf("expected one insert, got %d", repo.inserts)
	}
}

func TestNewsletterService_Subscribe_StoreDuplicate(t *testing.T) {
	repo := &stubSubscriberRepo{
		insertFn: func(ctx context.Context, sub *domain.Subscriber) error {
			return domain.ErrAlreadySubscribed
		},
	}
	dedup := &stubDedup{
		isFn: func(ctx context.Context, email string) (bool, error) { return false, nil },
	}
	svc := NewNewsletterService(repo, dedup, zerolog.Nop())

	err := svc.Subscribe(context.Background(), "marie@exemple.fr", "footer")
	if !errors.Is(err, domain.ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed from the store, got %v", err)
	}
	if len(dedup.marked) != 0 {
		t.Fatalf("failed insert must not mark the dedup key")
	}
}

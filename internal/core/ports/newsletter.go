package ports

import (
	"context"

	"github.com/iapourpme/content-api/internal/core/domain"
)

// SubscriberRepository persists newsletter signups.
type SubscriberRepository interface {
	Insert(ctx context.Context, sub *domain.Subscriber) error
	Count(ctx context.Context) (int64, error)
}

// SubscriberDedup answers "has this address already signed up" without
// touching the primary store.
type SubscriberDedup interface {
	IsSubscribed(ctx context.Context, email string) (bool, error)
	Mark(ctx context.Context, email string) error
}

// NewsletterService handles signups. Subscribe returns
// domain.ErrAlreadySubscribed on a repeat address.
type NewsletterService interface {
	Subscribe(ctx context.Context, email, source string) error
}

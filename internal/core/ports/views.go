package ports

import (
	"context"
	"time"
)

// PageView is one article read, recorded asynchronously.
type PageView struct {
	Slug string
	At   time.Time
}

// ViewService processes dequeued page views.
type ViewService interface {
	Process(ctx context.Context, view PageView) error
}

// StatsRepository persists per-article view counters.
type StatsRepository interface {
	IncrementViews(ctx context.Context, slug string, at time.Time) error
	TotalViews(ctx context.Context) (int64, error)
}

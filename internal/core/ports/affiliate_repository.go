package ports

import (
	"context"

	"github.com/iapourpme/content-api/internal/core/domain"
)

// AffiliateQuery carries the affiliate listing filters. Featured is a
// tri-state: nil applies no filter. Filters are applied before the limit.
type AffiliateQuery struct {
	Category string
	Featured *bool
	Limit    int
}

type AffiliateRepository interface {
	List(ctx context.Context, q AffiliateQuery) ([]domain.AffiliateResource, error)
	Count(ctx context.Context) (int64, error)
}

package ports

import (
	"context"

	"github.com/iapourpme/content-api/internal/core/domain"
)

// DashboardService backs the admin dashboard.
type DashboardService interface {
	// Overview returns the current settings and the aggregate stats block.
	Overview(ctx context.Context) (*domain.Settings, *domain.Stats, error)
	// UpdateSettings acknowledges a settings payload and returns the
	// confirmation message shown to the admin.
	UpdateSettings(ctx context.Context, settings domain.Settings) (string, error)
}

package ports

import (
	"context"

	"github.com/iapourpme/content-api/internal/core/domain"
)

// SettingsRepository reads the singleton site settings document.
// Returns domain.ErrSettingsNotFound when it has never been written.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

package port

import (
	"context"

	"ejsmarket/internal/domain"
)

// SettingsRepository defines persistence for the single site settings record.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, settings *domain.SiteSettings) error
}

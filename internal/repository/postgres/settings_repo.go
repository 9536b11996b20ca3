package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

type settingsRepo struct {
	db *sqlx.DB
}

// NewSettingsRepo creates a new PostgreSQL-backed SettingsRepository.
func NewSettingsRepo(db *sqlx.DB) port.SettingsRepository {
	return &settingsRepo{db: db}
}

// The settings table holds a single row with id = 1.
const settingsRowID = 1

func (r *settingsRepo) Get(ctx context.Context) (*domain.SiteSettings, error) {
	var settings domain.SiteSettings
	err := r.db.GetContext(ctx, &settings,
		"SELECT * FROM site_settings WHERE id = $1", settingsRowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.SiteSettings{ID: settingsRowID}, nil
		}
		return nil, fmt.Errorf("settingsRepo.Get: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepo) Update(ctx context.Context, settings *domain.SiteSettings) error {
	settings.ID = settingsRowID
	settings.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO site_settings (id, newsbar_text, newsbar_enabled, contact_email, contact_phone, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			newsbar_text = EXCLUDED.newsbar_text,
			newsbar_enabled = EXCLUDED.newsbar_enabled,
			contact_email = EXCLUDED.contact_email,
			contact_phone = EXCLUDED.contact_phone,
			updated_at = EXCLUDED.updated_at`,
		settings.ID, settings.NewsbarText, settings.NewsbarEnabled,
		settings.ContactEmail, settings.ContactPhone, settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("settingsRepo.Update: %w", err)
	}
	return nil
}

package service

import (
	"context"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/port"
)

// UpdateSettingsInput is the DTO for site settings updates.
type UpdateSettingsInput struct {
	NewsbarText    domain.LocalizedText `json:"newsbar_text"`
	NewsbarEnabled bool                 `json:"newsbar_enabled"`
	ContactEmail   string               `json:"contact_email"`
	ContactPhone   string               `json:"contact_phone"`
}

// SettingsService manages the single site settings record.
type SettingsService interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, input UpdateSettingsInput) (*domain.SiteSettings, error)
}

type settingsService struct {
	settingsRepo port.SettingsRepository
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(settingsRepo port.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, input UpdateSettingsInput) (*domain.SiteSettings, error) {
	settings := &domain.SiteSettings{
		NewsbarText:    input.NewsbarText,
		NewsbarEnabled: input.NewsbarEnabled,
		ContactEmail:   input.ContactEmail,
		ContactPhone:   input.ContactPhone,
	}
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/dto"
	"github.com/noah-isme/campus-desk-api/internal/models"
)

type settingsRepository interface {
	Get() models.SystemSettings
	Update(patch func(*models.SystemSettings)) models.SystemSettings
}

// SettingsService reads and updates the system settings sections.
type SettingsService struct {
	repo      settingsRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(repo settingsRepository, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, validator: validate, logger: logger}
}

// Get returns the current settings.
func (s *SettingsService) Get(ctx context.Context) models.SystemSettings {
	return s.repo.Get()
}

// Update replaces each section present in the request.
func (s *SettingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (*models.SystemSettings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid settings payload")
	}
	updated := s.repo.Update(func(current *models.SystemSettings) {
		if req.General != nil {
			current.General = *req.General
		}
		if req.Notifications != nil {
			current.Notifications = *req.Notifications
		}
		if req.Security != nil {
			current.Security = *req.Security
		}
	})
	s.logger.Info("settings updated",
		zap.Bool("general", req.General != nil),
		zap.Bool("notifications", req.Notifications != nil),
		zap.Bool("security", req.Security != nil))
	return &updated, nil
}

package dto

import "github.com/noah-isme/campus-desk-api/internal/models"

// UpdateSettingsRequest replaces any subset of settings sections.
type UpdateSettingsRequest struct {
	General       *models.GeneralSettings      `json:"general,omitempty" validate:"omitempty"`
	Notifications *models.NotificationSettings `json:"notifications,omitempty" validate:"omitempty"`
	Security      *models.SecuritySettings     `json:"security,omitempty" validate:"omitempty"`
}

package repository

import (
	"sync"

	"github.com/noah-isme/campus-desk-api/internal/models"
)

// SettingsRepository holds the single system settings document.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings models.SystemSettings
}

// NewSettingsRepository constructs a SettingsRepository.
func NewSettingsRepository(seed models.SystemSettings) *SettingsRepository {
	return &SettingsRepository{settings: seed}
}

// Get returns the current settings.
func (r *SettingsRepository) Get() models.SystemSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// Update applies patch atomically and returns the result.
func (r *SettingsRepository) Update(patch func(*models.SystemSettings)) models.SystemSettings {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.settings
	patch(&next)
	r.settings = next
	return next
}

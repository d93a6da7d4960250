package repository

import (
	"context"
	"errors"

	"github.com/RMahshie/signalbench/pkg/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a profile or one of its settings does not exist
var ErrNotFound = errors.New("not found")

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile, prefs models.UiPreferences, trigger models.TriggerConfig) error
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	ListProfilesBySession(ctx context.Context, sessionID string) ([]*models.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}

// SettingsRepository defines the interface for per-profile settings
type SettingsRepository interface {
	SaveUiPreferences(ctx context.Context, profileID uuid.UUID, prefs models.UiPreferences) error
	GetUiPreferences(ctx context.Context, profileID uuid.UUID) (models.UiPreferences, error)
	SaveTriggerConfig(ctx context.Context, profileID uuid.UUID, cfg models.TriggerConfig) error
	GetTriggerConfig(ctx context.Context, profileID uuid.UUID) (models.TriggerConfig, error)
	AddProcessingParams(ctx context.Context, profileID uuid.UUID, params models.ProcessingParams) (*models.ProcessingStep, error)
	ListProcessingParams(ctx context.Context, profileID uuid.UUID) ([]models.ProcessingStep, error)
	ReplaceSettings(ctx context.Context, profileID uuid.UUID, snapshot *models.Snapshot) error
}

// Repository combines profile and settings operations
type Repository interface {
	ProfileRepository
	SettingsRepository
}

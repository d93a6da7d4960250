package handlers

import (
	"context"
	"time"

	"github.com/RMahshie/signalbench/internal/export"
	"github.com/RMahshie/signalbench/internal/repository"
	"github.com/RMahshie/signalbench/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ProfileHandler handles profile and settings HTTP requests
type ProfileHandler struct {
	repo      repository.Repository
	exportSvc export.ExportService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(repo repository.Repository, exportSvc export.ExportService) *ProfileHandler {
	return &ProfileHandler{
		repo:      repo,
		exportSvc: exportSvc,
	}
}

// CreateProfile creates a profile seeded with default settings
func (h *ProfileHandler) CreateProfile(ctx context.Context, req *models.CreateProfileRequest) (*models.ProfileResponse, error) {
	now := time.Now().UTC()
	profile := &models.Profile{
		ID:        uuid.New().String(),
		SessionID: req.Body.SessionID,
		Name:      req.Body.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	prefs := models.DefaultUiPreferences()
	trigger := models.DefaultTriggerConfig()

	if err := h.repo.CreateProfile(ctx, profile, prefs, trigger); err != nil {
		return nil, toAPIError("Failed to create profile", err)
	}

	log.Info().Str("profileID", profile.ID).Str("sessionID", profile.SessionID).Msg("Profile created")

	return &models.ProfileResponse{
		Body: models.ProfileResponseBody{
			Profile:       *profile,
			UiPreferences: prefs,
			Trigger:       trigger,
			Processing:    []models.ProcessingStep{},
		},
	}, nil
}

// GetProfile returns a profile with all of its current settings
func (h *ProfileHandler) GetProfile(ctx context.Context, req *models.ProfileIDRequest) (*models.ProfileResponse, error) {
	profileID, err := parseProfileID(req.ID)
	if err != nil {
		return nil, err
	}

	profile, err := h.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, toAPIError("Failed to get profile", err)
	}

	prefs, err := h.repo.GetUiPreferences(ctx, profileID)
	if err != nil {
		return nil, toAPIError("Failed to get UI preferences", err)
	}

	trigger, err := h.repo.GetTriggerConfig(ctx, profileID)
	if err != nil {
		return nil, toAPIError("Failed to get trigger", err)
	}

	steps, err := h.repo.ListProcessingParams(ctx, profileID)
	if err != nil {
		return nil, toAPIError("Failed to list processing steps", err)
	}

	return &models.ProfileResponse{
		Body: models.ProfileResponseBody{
			Profile:       *profile,
			UiPreferences: prefs,
			Trigger:       trigger,
			Processing:    steps,
		},
	}, nil
}

// ListProfiles returns the profiles of a session
func (h *ProfileHandler) ListProfiles(ctx context.Context, req *models.ListProfilesRequest) (*models.ListProfilesResponse, error) {
	profiles, err := h.repo.ListProfilesBySession(ctx, req.SessionID)
	if err != nil {
		return nil, toAPIError("Failed to list profiles", err)
	}

	resp := &models.ListProfilesResponse{}
	resp.Body.Profiles = profiles
	return resp, nil
}

// DeleteProfile removes a profile and its settings
func (h *ProfileHandler) DeleteProfile(ctx context.Context, req *models.ProfileIDRequest) (*models.MessageResponse, error) {
	profileID, err := parseProfileID(req.ID)
	if err != nil {
		return nil, err
	}

	if err := h.repo.DeleteProfile(ctx, profileID); err != nil {
		return nil, toAPIError("Failed to delete profile", err)
	}

	log.Info().Str("profileID", profileID.String()).Msg("Profile deleted")

	resp := &models.MessageResponse{}
	resp.Body.Message = "Profile deleted"
	return resp, nil
}

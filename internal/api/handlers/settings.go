package handlers

import (
	"context"

	"github.com/RMahshie/signalbench/pkg/models"
	"github.com/rs/zerolog/log"
)

// GetUiPreferences returns the chart preferences of a profile
func (h *ProfileHandler) GetUiPreferences(ctx context.Context, req *models.ProfileIDRequest) (*models.UiPreferencesResponse, error) {
	profileID, err := parseProfileID(req.ID)
	if err != nil {
		return nil, err
	}

	prefs, err := h.repo.GetUiPreferences(ctx, profileID)
	if err != nil {
		return nil, toAPIError("Failed to get UI preferences", err)
	}

	return &models.UiPreferencesResponse{Body: prefs}, nil
}

// PutUiPreferences replaces the chart preferences of a profile
func (h *ProfileHandler) PutUiPreferences(ctx context.Context, req *models.UiPreferencesRequest) (*models.UiPreferencesResponse, error) {
	profileID, err := parseProfileID(req.ID)
	if err != nil {
		return nil, err
	}

	prefs := models.NewUiPreferences(req.Body.ChartZoom, req.Body.ChartPan)
	if err := prefs.Validate(); err != nil {
		return nil, toAPIError("Invalid UI preferences", err)
	}

	if err := h.repo.SaveUiPreferences(ctx, profileID, prefs); err != nil {
		return nil, toAPIError("Failed to save UI preferences", err)
	}

	log.Debug().
		Str("profileID", profileID.String()).
		Float64("zoom", prefs.ChartZoom).
		Float64("panX", prefs.ChartPan.X).
		Float64("panY", prefs.ChartPan.Y).
		Msg("UI preferences saved")

	return &models.UiPreferencesResponse{Body: prefs}, nil
}

// GetTriggerConfig returns the trigger configuration of a profile
func (h *ProfileHandler) GetTriggerConfig(ctx context.Context, req *models.ProfileIDRequest) (*models.TriggerConfigResponse, error) {
	profileID, err := parseProfileID(req.ID)
	if err != nil {
		return nil, err
	}

	cfg, err := h.repo.GetTriggerConfig(ctx, profileID)
	if err != nil {
		return nil, toAPIError("Failed to get trigger", err)
	}

	return &models.TriggerConfigResponse{Body: cfg}, nil
}

// PutTriggerConfig replaces the trigger configuration of a profile
func (h *ProfileHandler) PutTriggerConfig(ctx context.Context, req *models.TriggerConfigRequest) (*models.TriggerConfigResponse, error) {
	profileID, err := parseProfileID(req.ID)
	if err != nil {
		return nil, err
	}

	cfg := models.NewTriggerConfig(req.Body.Threshold, req.Body.Enabled)
	if err := cfg.Validate(); err != nil {
		return nil, toAPIError("Invalid trigger", err)
	}

	if err := h.repo.SaveTriggerConfig(ctx, profileID, cfg); err != nil {
		return nil, toAPIError("Failed to save trigger", err)
	}

	log.Info().
		Str("profileID", profileID.String()).
		Float64("threshold", cfg.Threshold).
		Bool("enabled", cfg.Enabled).
		Msg("Trigger saved")

	return &models.TriggerConfigResponse{Body: cfg}, nil
}

// AddProcessing validates and appends a processing step
func (h *ProfileHandler) AddProcessing(ctx context.Context, req *models.AddProcessingRequest) (*models.ProcessingStepResponse, error) {
	profileID, err := parseProfileID(req.ID)
	if err != nil {
		return nil, err
	}

	op, err := req.Body.Resolve()
	if err != nil {
		return nil, toAPIError("Invalid processing parameters", err)
	}

	step, err := h.repo.AddProcessingParams(ctx, profileID, models.ParamsFor(op))
	if err != nil {
		return nil, toAPIError("Failed to save processing step", err)
	}

	log.Info().
		Str("profileID", profileID.String()).
		Str("operation", string(op.Type())).
		Int("position", step.Position).
		Msg("Processing step added")

	return &models.ProcessingStepResponse{Body: *step}, nil
}

// ListProcessing returns the processing history of a profile
func (h *ProfileHandler) ListProcessing(ctx context.Context, req *models.ProfileIDRequest) (*models.ListProcessingResponse, error) {
	profileID, err := parseProfileID(req.ID)
	if err != nil {
		return nil, err
	}

	if _, err := h.repo.GetProfile(ctx, profileID); err != nil {
		return nil, toAPIError("Failed to get profile", err)
	}

	steps, err := h.repo.ListProcessingParams(ctx, profileID)
	if err != nil {
		return nil, toAPIError("Failed to list processing steps", err)
	}

	resp := &models.ListProcessingResponse{}
	resp.Body.Steps = steps
	return resp, nil
}

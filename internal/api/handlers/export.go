package handlers

import (
	"context"

	"github.com/RMahshie/signalbench/pkg/models"
)

// ExportProfile stores a snapshot of the profile and returns a download URL
func (h *ProfileHandler) ExportProfile(ctx context.Context, req *models.ProfileIDRequest) (*models.ExportResponse, error) {
	profileID, err := parseProfileID(req.ID)
	if err != nil {
		return nil, err
	}

	result, err := h.exportSvc.Export(ctx, profileID)
	if err != nil {
		return nil, toAPIError("Failed to export profile", err)
	}

	return &models.ExportResponse{
		Body: models.ExportResponseBody{
			Key:         result.Key,
			DownloadURL: result.DownloadURL,
			ExpiresIn:   int(result.ExpiresIn.Seconds()),
		},
	}, nil
}

// ImportProfile replaces the profile's settings with a stored snapshot
func (h *ProfileHandler) ImportProfile(ctx context.Context, req *models.ImportRequest) (*models.ProfileResponse, error) {
	profileID, err := parseProfileID(req.ID)
	if err != nil {
		return nil, err
	}

	if _, err := h.exportSvc.Import(ctx, profileID, req.Body.Key); err != nil {
		return nil, toAPIError("Failed to import profile", err)
	}

	return h.GetProfile(ctx, &models.ProfileIDRequest{ID: req.ID})
}

package handlers

import (
	"errors"

	"github.com/RMahshie/signalbench/internal/export"
	"github.com/RMahshie/signalbench/internal/repository"
	"github.com/RMahshie/signalbench/internal/storage"
	"github.com/RMahshie/signalbench/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// parseProfileID validates the path ID of a profile
func parseProfileID(id string) (uuid.UUID, error) {
	profileID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, huma.Error400BadRequest("Invalid profile ID", err)
	}
	return profileID, nil
}

// toAPIError maps service and repository errors onto HTTP responses
func toAPIError(msg string, err error) error {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// The wrapped message names the missing record, e.g. "trigger config <id>: not found"
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, storage.ErrObjectNotFound):
		return huma.Error404NotFound("Snapshot not found", err)
	case errors.As(err, &verr):
		details := make([]error, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, &huma.ErrorDetail{
				Message:  f.Message,
				Location: "body." + f.Field,
			})
		}
		return huma.Error422UnprocessableEntity(verr.Error(), details...)
	case errors.Is(err, export.ErrUnsupportedVersion), errors.Is(err, export.ErrInvalidSnapshot):
		return huma.Error422UnprocessableEntity(err.Error())
	}

	log.Error().Err(err).Msg(msg)
	return huma.Error500InternalServerError(msg, err)
}

package api

import (
	"net/http"

	"github.com/RMahshie/signalbench/internal/api/handlers"
	"github.com/RMahshie/signalbench/internal/export"
	"github.com/RMahshie/signalbench/internal/repository"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, repo repository.Repository, exportSvc export.ExportService) {
	profileHandler := handlers.NewProfileHandler(repo, exportSvc)

	// Profiles
	huma.Register(api, huma.Operation{
		OperationID:   "createProfile",
		Method:        http.MethodPost,
		Path:          "/api/profiles",
		Summary:       "Create a profile",
		Description:   "Creates a settings profile seeded with default chart preferences and trigger",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusCreated,
	}, profileHandler.CreateProfile)

	huma.Register(api, huma.Operation{
		OperationID: "getProfile",
		Method:      http.MethodGet,
		Path:        "/api/profiles/{id}",
		Summary:     "Get a profile",
		Description: "Returns a profile with its chart preferences, trigger and processing history",
		Tags:        []string{"Profiles"},
	}, profileHandler.GetProfile)

	huma.Register(api, huma.Operation{
		OperationID: "listProfiles",
		Method:      http.MethodGet,
		Path:        "/api/sessions/{sessionId}/profiles",
		Summary:     "List session profiles",
		Description: "Returns the profiles saved by a client session, newest first",
		Tags:        []string{"Profiles"},
	}, profileHandler.ListProfiles)

	huma.Register(api, huma.Operation{
		OperationID: "deleteProfile",
		Method:      http.MethodDelete,
		Path:        "/api/profiles/{id}",
		Summary:     "Delete a profile",
		Description: "Deletes a profile and all of its settings",
		Tags:        []string{"Profiles"},
	}, profileHandler.DeleteProfile)

	// Settings
	huma.Register(api, huma.Operation{
		OperationID: "getUiPreferences",
		Method:      http.MethodGet,
		Path:        "/api/profiles/{id}/ui-preferences",
		Summary:     "Get chart preferences",
		Tags:        []string{"Settings"},
	}, profileHandler.GetUiPreferences)

	huma.Register(api, huma.Operation{
		OperationID: "putUiPreferences",
		Method:      http.MethodPut,
		Path:        "/api/profiles/{id}/ui-preferences",
		Summary:     "Replace chart preferences",
		Description: "Stores a new chart zoom factor and pan offset",
		Tags:        []string{"Settings"},
	}, profileHandler.PutUiPreferences)

	huma.Register(api, huma.Operation{
		OperationID: "getTrigger",
		Method:      http.MethodGet,
		Path:        "/api/profiles/{id}/trigger",
		Summary:     "Get trigger configuration",
		Tags:        []string{"Settings"},
	}, profileHandler.GetTriggerConfig)

	huma.Register(api, huma.Operation{
		OperationID: "putTrigger",
		Method:      http.MethodPut,
		Path:        "/api/profiles/{id}/trigger",
		Summary:     "Replace trigger configuration",
		Description: "Stores a new trigger threshold and enabled flag",
		Tags:        []string{"Settings"},
	}, profileHandler.PutTriggerConfig)

	huma.Register(api, huma.Operation{
		OperationID: "listProcessing",
		Method:      http.MethodGet,
		Path:        "/api/profiles/{id}/processing",
		Summary:     "List processing steps",
		Tags:        []string{"Processing"},
	}, profileHandler.ListProcessing)

	huma.Register(api, huma.Operation{
		OperationID:   "addProcessing",
		Method:        http.MethodPost,
		Path:          "/api/profiles/{id}/processing",
		Summary:       "Add a processing step",
		Description:   "Validates the parameters against the operation kind and appends them to the history",
		Tags:          []string{"Processing"},
		DefaultStatus: http.StatusCreated,
	}, profileHandler.AddProcessing)

	// Snapshots
	huma.Register(api, huma.Operation{
		OperationID: "exportProfile",
		Method:      http.MethodPost,
		Path:        "/api/profiles/{id}/export",
		Summary:     "Export a profile",
		Description: "Writes a JSON snapshot of the profile to object storage and returns a download URL",
		Tags:        []string{"Snapshots"},
	}, profileHandler.ExportProfile)

	huma.Register(api, huma.Operation{
		OperationID: "importProfile",
		Method:      http.MethodPost,
		Path:        "/api/profiles/{id}/import",
		Summary:     "Import a profile",
		Description: "Replaces the profile's settings with a stored snapshot",
		Tags:        []string{"Snapshots"},
	}, profileHandler.ImportProfile)
}

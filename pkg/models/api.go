package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// ProfileIDRequest addresses a single profile
type ProfileIDRequest struct {
	ID string `path:"id" doc:"Profile ID"`
}

// CreateProfileRequestBody is the body of a create profile request
type CreateProfileRequestBody struct {
	SessionID string `json:"session_id" minLength:"10" maxLength:"50" required:"true" doc:"Client session identifier"`
	Name      string `json:"name" minLength:"1" maxLength:"100" required:"true" doc:"Display name"`
}

// CreateProfileRequest represents a request to create a new settings profile
type CreateProfileRequest struct {
	Body CreateProfileRequestBody
}

// ProfileResponseBody is a profile with all of its current settings
type ProfileResponseBody struct {
	Profile       Profile          `json:"profile" doc:"Profile metadata"`
	UiPreferences UiPreferences    `json:"ui_preferences" doc:"Chart display preferences"`
	Trigger       TriggerConfig    `json:"trigger" doc:"Trigger configuration"`
	Processing    []ProcessingStep `json:"processing" doc:"Processing history, oldest first"`
}

// ProfileResponse wraps ProfileResponseBody
type ProfileResponse struct {
	Body ProfileResponseBody
}

// ListProfilesRequest lists the profiles of a session
type ListProfilesRequest struct {
	SessionID string `path:"sessionId" minLength:"10" maxLength:"50" doc:"Client session identifier"`
}

// ListProfilesResponse is the list of profiles for a session
type ListProfilesResponse struct {
	Body struct {
		Profiles []*Profile `json:"profiles" doc:"Profiles, newest first"`
	}
}

// UiPreferencesRequest replaces the UI preferences of a profile
type UiPreferencesRequest struct {
	ID   string `path:"id" doc:"Profile ID"`
	Body UiPreferences
}

// UiPreferencesResponse returns UI preferences
type UiPreferencesResponse struct {
	Body UiPreferences
}

// TriggerConfigRequest replaces the trigger configuration of a profile
type TriggerConfigRequest struct {
	ID   string `path:"id" doc:"Profile ID"`
	Body TriggerConfig
}

// TriggerConfigResponse returns a trigger configuration
type TriggerConfigResponse struct {
	Body TriggerConfig
}

// AddProcessingRequest appends a processing step to a profile
type AddProcessingRequest struct {
	ID   string `path:"id" doc:"Profile ID"`
	Body ProcessingParams
}

// ProcessingStepResponse returns a stored processing step
type ProcessingStepResponse struct {
	Body ProcessingStep
}

// ListProcessingResponse returns a profile's processing history
type ListProcessingResponse struct {
	Body struct {
		Steps []ProcessingStep `json:"steps" doc:"Processing history, oldest first"`
	}
}

// ExportResponseBody describes a stored snapshot
type ExportResponseBody struct {
	Key         string `json:"key" doc:"Object storage key of the snapshot"`
	DownloadURL string `json:"download_url" doc:"Pre-signed download URL"`
	ExpiresIn   int    `json:"expires_in" doc:"URL expiration time in seconds"`
}

// ExportResponse wraps ExportResponseBody
type ExportResponse struct {
	Body ExportResponseBody
}

// ImportRequest loads a stored snapshot into a profile
type ImportRequest struct {
	ID   string `path:"id" doc:"Profile ID"`
	Body struct {
		Key string `json:"key" minLength:"1" required:"true" doc:"Object storage key of the snapshot"`
	}
}

// MessageResponse is a plain confirmation
type MessageResponse struct {
	Body struct {
		Message string `json:"message" doc:"Confirmation message"`
	}
}

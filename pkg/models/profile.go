package models

import (
	"time"
)

// Profile groups the saved settings of one signal workspace
type Profile struct {
	ID        string    `json:"id" doc:"Profile unique identifier"`
	SessionID string    `json:"session_id" doc:"Client session identifier"`
	Name      string    `json:"name" doc:"Display name"`
	CreatedAt time.Time `json:"created_at" doc:"Creation timestamp"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last settings change"`
}

// ProcessingStep is one entry in a profile's processing history
type ProcessingStep struct {
	ID        string           `json:"id" doc:"Step unique identifier"`
	ProfileID string           `json:"profile_id" doc:"Owning profile"`
	Position  int              `json:"position" doc:"Order of the step within the profile, starting at 1"`
	Params    ProcessingParams `json:"params" doc:"Processing parameters"`
	CreatedAt time.Time        `json:"created_at" doc:"When the step was recorded"`
}

// SnapshotVersion is the current export document version
const SnapshotVersion = 1

// Snapshot is the exported JSON document of a profile's settings
type Snapshot struct {
	Version       int                `json:"version"`
	ProfileID     string             `json:"profile_id"`
	Name          string             `json:"name"`
	ExportedAt    time.Time          `json:"exported_at"`
	UiPreferences UiPreferences      `json:"ui_preferences"`
	Trigger       TriggerConfig      `json:"trigger"`
	Processing    []ProcessingParams `json:"processing"`
}

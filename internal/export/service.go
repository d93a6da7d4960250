package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RMahshie/signalbench/internal/repository"
	"github.com/RMahshie/signalbench/internal/storage"
	"github.com/RMahshie/signalbench/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	// ErrUnsupportedVersion is returned when a snapshot was written by an unknown format version
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	// ErrInvalidSnapshot is returned when a stored object is not a snapshot document
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// Result describes a stored snapshot
type Result struct {
	Key         string
	DownloadURL string
	ExpiresIn   time.Duration
}

// ExportService moves profile settings to and from object storage
type ExportService interface {
	Export(ctx context.Context, profileID uuid.UUID) (*Result, error)
	Import(ctx context.Context, profileID uuid.UUID, key string) (*models.Snapshot, error)
}

type exportService struct {
	s3         storage.S3Service
	repository repository.Repository
}

// NewExportService creates a snapshot service
func NewExportService(s3Service storage.S3Service, repo repository.Repository) ExportService {
	return &exportService{
		s3:         s3Service,
		repository: repo,
	}
}

// Export writes a JSON snapshot of the profile's settings and returns where it lives
func (s *exportService) Export(ctx context.Context, profileID uuid.UUID) (*Result, error) {
	profile, err := s.repository.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.repository.GetUiPreferences(ctx, profileID)
	if err != nil {
		return nil, err
	}

	trigger, err := s.repository.GetTriggerConfig(ctx, profileID)
	if err != nil {
		return nil, err
	}

	steps, err := s.repository.ListProcessingParams(ctx, profileID)
	if err != nil {
		return nil, err
	}

	snapshot := models.Snapshot{
		Version:       models.SnapshotVersion,
		ProfileID:     profile.ID,
		Name:          profile.Name,
		ExportedAt:    time.Now().UTC(),
		UiPreferences: prefs,
		Trigger:       trigger,
		Processing:    make([]models.ProcessingParams, 0, len(steps)),
	}
	for _, step := range steps {
		snapshot.Processing = append(snapshot.Processing, step.Params)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("profiles/%s/%s.json", profileID, uuid.New())
	if err := s.s3.UploadFile(ctx, key, "application/json", data); err != nil {
		return nil, err
	}

	url, err := s.s3.GenerateDownloadURL(ctx, key)
	if err != nil {
		// Don't leave an unreachable snapshot behind
		if delErr := s.s3.DeleteFile(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("Failed to remove orphaned snapshot")
		}
		return nil, err
	}

	log.Info().
		Str("profileID", profileID.String()).
		Str("key", key).
		Int("steps", len(snapshot.Processing)).
		Msg("Profile snapshot exported")

	return &Result{Key: key, DownloadURL: url, ExpiresIn: s.s3.URLExpiry()}, nil
}

// Import loads a snapshot from storage, validates it and replaces the profile's settings
func (s *exportService) Import(ctx context.Context, profileID uuid.UUID, key string) (*models.Snapshot, error) {
	if _, err := s.repository.GetProfile(ctx, profileID); err != nil {
		return nil, err
	}

	data, err := s.s3.DownloadFile(ctx, key)
	if err != nil {
		return nil, err
	}

	snapshot, err := Decode(data)
	if err != nil {
		return nil, err
	}

	if err := s.repository.ReplaceSettings(ctx, profileID, snapshot); err != nil {
		return nil, err
	}

	log.Info().
		Str("profileID", profileID.String()).
		Str("key", key).
		Str("sourceProfileID", snapshot.ProfileID).
		Msg("Profile snapshot imported")

	return snapshot, nil
}

// Decode parses a snapshot, validates every record it carries and rewrites
// processing steps into their canonical form
func Decode(data []byte) (*models.Snapshot, error) {
	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	if snapshot.Version != models.SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snapshot.Version)
	}

	if err := snapshot.UiPreferences.Validate(); err != nil {
		return nil, err
	}
	if err := snapshot.Trigger.Validate(); err != nil {
		return nil, err
	}
	for i, params := range snapshot.Processing {
		op, err := params.Resolve()
		if err != nil {
			return nil, fmt.Errorf("processing step %d: %w", i+1, err)
		}
		snapshot.Processing[i] = models.ParamsFor(op)
	}

	return &snapshot, nil
}

// Package mocks holds testify mocks of the service interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/RMahshie/signalbench/internal/export"
	"github.com/RMahshie/signalbench/internal/repository"
	"github.com/RMahshie/signalbench/internal/storage"
	"github.com/RMahshie/signalbench/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	_ repository.Repository = (*MockRepository)(nil)
	_ storage.S3Service     = (*MockS3Service)(nil)
	_ export.ExportService  = (*MockExportService)(nil)
)

// MockRepository implements repository.Repository for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateProfile(ctx context.Context, profile *models.Profile, prefs models.UiPreferences, trigger models.TriggerConfig) error {
	return m.Called(ctx, profile, prefs, trigger).Error(0)
}

func (m *MockRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*models.Profile)
	return profile, args.Error(1)
}

func (m *MockRepository) ListProfilesBySession(ctx context.Context, sessionID string) ([]*models.Profile, error) {
	args := m.Called(ctx, sessionID)
	profiles, _ := args.Get(0).([]*models.Profile)
	return profiles, args.Error(1)
}

func (m *MockRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) SaveUiPreferences(ctx context.Context, profileID uuid.UUID, prefs models.UiPreferences) error {
	return m.Called(ctx, profileID, prefs).Error(0)
}

func (m *MockRepository) GetUiPreferences(ctx context.Context, profileID uuid.UUID) (models.UiPreferences, error) {
	args := m.Called(ctx, profileID)
	prefs, _ := args.Get(0).(models.UiPreferences)
	return prefs, args.Error(1)
}

func (m *MockRepository) SaveTriggerConfig(ctx context.Context, profileID uuid.UUID, cfg models.TriggerConfig) error {
	return m.Called(ctx, profileID, cfg).Error(0)
}

func (m *MockRepository) GetTriggerConfig(ctx context.Context, profileID uuid.UUID) (models.TriggerConfig, error) {
	args := m.Called(ctx, profileID)
	cfg, _ := args.Get(0).(models.TriggerConfig)
	return cfg, args.Error(1)
}

func (m *MockRepository) AddProcessingParams(ctx context.Context, profileID uuid.UUID, params models.ProcessingParams) (*models.ProcessingStep, error) {
	args := m.Called(ctx, profileID, params)
	step, _ := args.Get(0).(*models.ProcessingStep)
	return step, args.Error(1)
}

func (m *MockRepository) ListProcessingParams(ctx context.Context, profileID uuid.UUID) ([]models.ProcessingStep, error) {
	args := m.Called(ctx, profileID)
	steps, _ := args.Get(0).([]models.ProcessingStep)
	return steps, args.Error(1)
}

func (m *MockRepository) ReplaceSettings(ctx context.Context, profileID uuid.UUID, snapshot *models.Snapshot) error {
	return m.Called(ctx, profileID, snapshot).Error(0)
}

// MockS3Service implements storage.S3Service for testing
type MockS3Service struct {
	mock.Mock
}

func (m *MockS3Service) UploadFile(ctx context.Context, key string, contentType string, data []byte) error {
	return m.Called(ctx, key, contentType, data).Error(0)
}

func (m *MockS3Service) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockS3Service) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockS3Service) DeleteFile(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockS3Service) URLExpiry() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockExportService implements export.ExportService for testing
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, profileID uuid.UUID) (*export.Result, error) {
	args := m.Called(ctx, profileID)
	result, _ := args.Get(0).(*export.Result)
	return result, args.Error(1)
}

func (m *MockExportService) Import(ctx context.Context, profileID uuid.UUID, key string) (*models.Snapshot, error) {
	args := m.Called(ctx, profileID, key)
	snapshot, _ := args.Get(0).(*models.Snapshot)
	return snapshot, args.Error(1)
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/RMahshie/signalbench/internal/export"
	"github.com/RMahshie/signalbench/internal/mocks"
	"github.com/RMahshie/signalbench/internal/repository"
	"github.com/RMahshie/signalbench/internal/storage"
	"github.com/RMahshie/signalbench/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se), "expected huma status error, got %v", err)
	return se.GetStatus()
}

func TestCreateProfile(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(*mocks.MockRepository)
		wantStatus int
	}{
		{
			name: "seeds defaults",
			mockSetup: func(repo *mocks.MockRepository) {
				repo.On("CreateProfile", mock.Anything, mock.AnythingOfType("*models.Profile"),
					models.DefaultUiPreferences(), models.DefaultTriggerConfig()).Return(nil)
			},
		},
		{
			name: "database failure",
			mockSetup: func(repo *mocks.MockRepository) {
				repo.On("CreateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "default settings rejected",
			mockSetup: func(repo *mocks.MockRepository) {
				repo.On("CreateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(fmt.Errorf("failed to write trigger config: %w", errors.New("deadlock detected")))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockRepository{}
			tt.mockSetup(repo)
			handler := NewProfileHandler(repo, &mocks.MockExportService{})

			req := &models.CreateProfileRequest{
				Body: models.CreateProfileRequestBody{SessionID: "test-session-123", Name: "bench"},
			}
			resp, err := handler.CreateProfile(context.Background(), req)

			if tt.wantStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, resp.Body.Profile.ID)
				assert.Equal(t, "test-session-123", resp.Body.Profile.SessionID)
				assert.Equal(t, models.DefaultUiPreferences(), resp.Body.UiPreferences)
				assert.Equal(t, models.DefaultTriggerConfig(), resp.Body.Trigger)
				assert.Empty(t, resp.Body.Processing)
			}

			repo.AssertExpectations(t)
			repo.AssertNumberOfCalls(t, "CreateProfile", 1)
			repo.AssertNotCalled(t, "ReplaceSettings", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGetProfile(t *testing.T) {
	profileID := uuid.New()
	notFound := fmt.Errorf("profile %s: %w", profileID, repository.ErrNotFound)

	tests := []struct {
		name       string
		id         string
		mockSetup  func(*mocks.MockRepository)
		wantStatus int
	}{
		{
			name: "found",
			id:   profileID.String(),
			mockSetup: func(repo *mocks.MockRepository) {
				repo.On("GetProfile", mock.Anything, profileID).Return(&models.Profile{ID: profileID.String(), CreatedAt: time.Now()}, nil)
				repo.On("GetUiPreferences", mock.Anything, profileID).Return(models.NewUiPreferences(3, models.NewChartPan(1, 1)), nil)
				repo.On("GetTriggerConfig", mock.Anything, profileID).Return(models.NewTriggerConfig(0.9, true), nil)
				repo.On("ListProcessingParams", mock.Anything, profileID).Return([]models.ProcessingStep{
					{Position: 1, Params: models.NewProcessingParams(models.OperationGain, models.WithGain(2))},
				}, nil)
			},
		},
		{
			name:       "invalid id",
			id:         "not-a-uuid",
			mockSetup:  func(repo *mocks.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown profile",
			id:   profileID.String(),
			mockSetup: func(repo *mocks.MockRepository) {
				repo.On("GetProfile", mock.Anything, profileID).Return(nil, notFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockRepository{}
			tt.mockSetup(repo)
			handler := NewProfileHandler(repo, &mocks.MockExportService{})

			resp, err := handler.GetProfile(context.Background(), &models.ProfileIDRequest{ID: tt.id})

			if tt.wantStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, profileID.String(), resp.Body.Profile.ID)
				assert.Equal(t, 3.0, resp.Body.UiPreferences.ChartZoom)
				assert.True(t, resp.Body.Trigger.Enabled)
				assert.Len(t, resp.Body.Processing, 1)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestGetProfile_MissingSettingsNamed(t *testing.T) {
	profileID := uuid.New()
	repo := &mocks.MockRepository{}
	repo.On("GetProfile", mock.Anything, profileID).Return(&models.Profile{ID: profileID.String()}, nil)
	repo.On("GetUiPreferences", mock.Anything, profileID).
		Return(models.UiPreferences{}, fmt.Errorf("ui preferences %s: %w", profileID, repository.ErrNotFound))

	_, err := NewProfileHandler(repo, &mocks.MockExportService{}).
		GetProfile(context.Background(), &models.ProfileIDRequest{ID: profileID.String()})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	var model *huma.ErrorModel
	require.ErrorAs(t, err, &model)
	assert.Contains(t, model.Detail, "ui preferences")
}

func TestDeleteProfile_NotFound(t *testing.T) {
	profileID := uuid.New()
	repo := &mocks.MockRepository{}
	repo.On("DeleteProfile", mock.Anything, profileID).Return(fmt.Errorf("profile: %w", repository.ErrNotFound))

	_, err := NewProfileHandler(repo, &mocks.MockExportService{}).
		DeleteProfile(context.Background(), &models.ProfileIDRequest{ID: profileID.String()})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestPutUiPreferences(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name       string
		body       models.UiPreferences
		repoErr    error
		wantStatus int
	}{
		{name: "valid", body: models.NewUiPreferences(2, models.NewChartPan(-4, 8))},
		{name: "zero zoom", body: models.NewUiPreferences(0, models.NewChartPan(0, 0)), wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown profile", body: models.DefaultUiPreferences(), repoErr: repository.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockRepository{}
			if tt.wantStatus != http.StatusUnprocessableEntity {
				repo.On("SaveUiPreferences", mock.Anything, profileID, tt.body).Return(tt.repoErr)
			}
			handler := NewProfileHandler(repo, &mocks.MockExportService{})

			resp, err := handler.PutUiPreferences(context.Background(), &models.UiPreferencesRequest{ID: profileID.String(), Body: tt.body})

			if tt.wantStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			} else {
				require.NoError(t, err)
				assert.True(t, tt.body == resp.Body)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestPutTriggerConfig(t *testing.T) {
	profileID := uuid.New()
	cfg := models.NewTriggerConfig(0.5, true)

	repo := &mocks.MockRepository{}
	repo.On("SaveTriggerConfig", mock.Anything, profileID, cfg).Return(nil)
	handler := NewProfileHandler(repo, &mocks.MockExportService{})

	resp, err := handler.PutTriggerConfig(context.Background(), &models.TriggerConfigRequest{ID: profileID.String(), Body: cfg})
	require.NoError(t, err)
	assert.Equal(t, cfg, resp.Body)

	repo.AssertExpectations(t)
}

func TestAddProcessing(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name       string
		body       models.ProcessingParams
		stored     models.ProcessingParams
		wantStatus int
	}{
		{
			name:   "low pass gets default order",
			body:   models.NewProcessingParams(models.OperationLowPass, models.WithCutoffFrequency(500)),
			stored: models.NewProcessingParams(models.OperationLowPass, models.WithCutoffFrequency(500), models.WithOrder(models.DefaultFilterOrder)),
		},
		{
			name:   "gain",
			body:   models.NewProcessingParams(models.OperationGain, models.WithGain(1.5)),
			stored: models.NewProcessingParams(models.OperationGain, models.WithGain(1.5)),
		},
		{
			name:       "gain with cutoff",
			body:       models.NewProcessingParams(models.OperationGain, models.WithGain(1.5), models.WithCutoffFrequency(100)),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "band pass missing high edge",
			body:       models.NewProcessingParams(models.OperationBandPass, models.WithLowCutoff(100)),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockRepository{}
			if tt.wantStatus == 0 {
				repo.On("AddProcessingParams", mock.Anything, profileID, mock.MatchedBy(func(p models.ProcessingParams) bool {
					return p.Equal(tt.stored)
				})).Return(&models.ProcessingStep{ID: uuid.New().String(), Position: 1, Params: tt.stored}, nil)
			}
			handler := NewProfileHandler(repo, &mocks.MockExportService{})

			resp, err := handler.AddProcessing(context.Background(), &models.AddProcessingRequest{ID: profileID.String(), Body: tt.body})

			if tt.wantStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, resp.Body.Position)
				assert.True(t, tt.stored.Equal(resp.Body.Params))
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestExportProfile(t *testing.T) {
	profileID := uuid.New()
	exportSvc := &mocks.MockExportService{}
	exportSvc.On("Export", mock.Anything, profileID).Return(&export.Result{
		Key:         "profiles/key.json",
		DownloadURL: "https://example.com/key.json",
		ExpiresIn:   15 * time.Minute,
	}, nil)

	resp, err := NewProfileHandler(&mocks.MockRepository{}, exportSvc).
		ExportProfile(context.Background(), &models.ProfileIDRequest{ID: profileID.String()})

	require.NoError(t, err)
	assert.Equal(t, "profiles/key.json", resp.Body.Key)
	assert.Equal(t, 900, resp.Body.ExpiresIn)
	exportSvc.AssertExpectations(t)
}

func TestImportProfile_Errors(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing snapshot", fmt.Errorf("key: %w", storage.ErrObjectNotFound), http.StatusNotFound},
		{"unsupported version", fmt.Errorf("%w: 7", export.ErrUnsupportedVersion), http.StatusUnprocessableEntity},
		{"inconsistent params", &models.ValidationError{Fields: []models.FieldError{{Field: "gain", Message: "is required"}}}, http.StatusUnprocessableEntity},
		{"storage failure", errors.New("timeout"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exportSvc := &mocks.MockExportService{}
			exportSvc.On("Import", mock.Anything, profileID, "profiles/key.json").Return(nil, tt.err)

			req := &models.ImportRequest{ID: profileID.String()}
			req.Body.Key = "profiles/key.json"
			_, err := NewProfileHandler(&mocks.MockRepository{}, exportSvc).ImportProfile(context.Background(), req)

			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
		})
	}
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RMahshie/signalbench/pkg/models"
	"github.com/google/uuid"
)

// SaveUiPreferences replaces the UI preferences of a profile
func (r *PostgresRepository) SaveUiPreferences(ctx context.Context, profileID uuid.UUID, prefs models.UiPreferences) error {
	return r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		return upsertUiPreferences(ctx, tx, profileID, prefs)
	})
}

// GetUiPreferences retrieves the UI preferences of a profile
func (r *PostgresRepository) GetUiPreferences(ctx context.Context, profileID uuid.UUID) (models.UiPreferences, error) {
	query := `
		SELECT chart_zoom, pan_x, pan_y
		FROM ui_preferences
		WHERE profile_id = $1`

	var prefs models.UiPreferences
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&prefs.ChartZoom,
		&prefs.ChartPan.X,
		&prefs.ChartPan.Y)
	if err != nil {
		return models.UiPreferences{}, notFound(err, "ui preferences", profileID)
	}

	return prefs, nil
}

// SaveTriggerConfig replaces the trigger configuration of a profile
func (r *PostgresRepository) SaveTriggerConfig(ctx context.Context, profileID uuid.UUID, cfg models.TriggerConfig) error {
	return r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		return upsertTriggerConfig(ctx, tx, profileID, cfg)
	})
}

// GetTriggerConfig retrieves the trigger configuration of a profile
func (r *PostgresRepository) GetTriggerConfig(ctx context.Context, profileID uuid.UUID) (models.TriggerConfig, error) {
	query := `
		SELECT threshold, enabled
		FROM trigger_configs
		WHERE profile_id = $1`

	var cfg models.TriggerConfig
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(&cfg.Threshold, &cfg.Enabled)
	if err != nil {
		return models.TriggerConfig{}, notFound(err, "trigger config", profileID)
	}

	return cfg, nil
}

// AddProcessingParams appends a step to the end of a profile's processing history
func (r *PostgresRepository) AddProcessingParams(ctx context.Context, profileID uuid.UUID, params models.ProcessingParams) (*models.ProcessingStep, error) {
	var step *models.ProcessingStep
	err := r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		var position int
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position), 0) + 1 FROM processing_params WHERE profile_id = $1`,
			profileID).Scan(&position); err != nil {
			return fmt.Errorf("failed to compute step position: %w", err)
		}

		var err error
		step, err = insertProcessingParams(ctx, tx, profileID, position, params)
		return err
	})
	if err != nil {
		return nil, err
	}
	return step, nil
}

// ListProcessingParams retrieves a profile's processing history, oldest first
func (r *PostgresRepository) ListProcessingParams(ctx context.Context, profileID uuid.UUID) ([]models.ProcessingStep, error) {
	query := `
		SELECT id, profile_id, position, operation, cutoff_frequency, low_cutoff, high_cutoff, gain, filter_order, created_at
		FROM processing_params
		WHERE profile_id = $1
		ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list processing params: %w", err)
	}
	defer rows.Close()

	steps := []models.ProcessingStep{}
	for rows.Next() {
		var step models.ProcessingStep
		var operation string
		var cutoff, low, high, gain sql.NullFloat64
		var order sql.NullInt64

		if err := rows.Scan(
			&step.ID,
			&step.ProfileID,
			&step.Position,
			&operation,
			&cutoff,
			&low,
			&high,
			&gain,
			&order,
			&step.CreatedAt); err != nil {
			return nil, err
		}

		step.Params = models.NewProcessingParams(models.OperationType(operation))
		if cutoff.Valid {
			step.Params.CutoffFrequency = &cutoff.Float64
		}
		if low.Valid {
			step.Params.LowCutoff = &low.Float64
		}
		if high.Valid {
			step.Params.HighCutoff = &high.Float64
		}
		if gain.Valid {
			step.Params.Gain = &gain.Float64
		}
		if order.Valid {
			o := int(order.Int64)
			step.Params.Order = &o
		}

		steps = append(steps, step)
	}

	return steps, rows.Err()
}

// ReplaceSettings overwrites every setting of a profile with the snapshot contents
func (r *PostgresRepository) ReplaceSettings(ctx context.Context, profileID uuid.UUID, snapshot *models.Snapshot) error {
	return r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		if err := upsertUiPreferences(ctx, tx, profileID, snapshot.UiPreferences); err != nil {
			return err
		}
		if err := upsertTriggerConfig(ctx, tx, profileID, snapshot.Trigger); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM processing_params WHERE profile_id = $1`, profileID); err != nil {
			return fmt.Errorf("failed to clear processing params: %w", err)
		}
		for i, params := range snapshot.Processing {
			if _, err := insertProcessingParams(ctx, tx, profileID, i+1, params); err != nil {
				return err
			}
		}
		return nil
	})
}

// inTx runs fn in a transaction holding a row lock on the profile, and bumps its updated_at
func (r *PostgresRepository) inTx(ctx context.Context, profileID uuid.UUID, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id string
	if err := tx.QueryRowContext(ctx, `SELECT id FROM profiles WHERE id = $1 FOR UPDATE`, profileID).Scan(&id); err != nil {
		return notFound(err, "profile", profileID)
	}

	if err := fn(tx); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE profiles SET updated_at = NOW() WHERE id = $1`, profileID); err != nil {
		return fmt.Errorf("failed to touch profile: %w", err)
	}

	return tx.Commit()
}

func upsertUiPreferences(ctx context.Context, tx *sql.Tx, profileID uuid.UUID, prefs models.UiPreferences) error {
	query := `
		INSERT INTO ui_preferences (profile_id, chart_zoom, pan_x, pan_y, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (profile_id) DO UPDATE
		SET chart_zoom = EXCLUDED.chart_zoom, pan_x = EXCLUDED.pan_x, pan_y = EXCLUDED.pan_y, updated_at = NOW()`

	if _, err := tx.ExecContext(ctx, query, profileID, prefs.ChartZoom, prefs.ChartPan.X, prefs.ChartPan.Y); err != nil {
		return notFound(err, "ui preferences", profileID)
	}
	return nil
}

func upsertTriggerConfig(ctx context.Context, tx *sql.Tx, profileID uuid.UUID, cfg models.TriggerConfig) error {
	query := `
		INSERT INTO trigger_configs (profile_id, threshold, enabled, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (profile_id) DO UPDATE
		SET threshold = EXCLUDED.threshold, enabled = EXCLUDED.enabled, updated_at = NOW()`

	if _, err := tx.ExecContext(ctx, query, profileID, cfg.Threshold, cfg.Enabled); err != nil {
		return notFound(err, "trigger config", profileID)
	}
	return nil
}

func insertProcessingParams(ctx context.Context, tx *sql.Tx, profileID uuid.UUID, position int, params models.ProcessingParams) (*models.ProcessingStep, error) {
	step := &models.ProcessingStep{
		ID:        uuid.New().String(),
		ProfileID: profileID.String(),
		Position:  position,
		Params:    params.Clone(),
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO processing_params (id, profile_id, position, operation, cutoff_frequency, low_cutoff, high_cutoff, gain, filter_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.ExecContext(ctx, query,
		step.ID,
		profileID,
		step.Position,
		string(params.Operation),
		params.CutoffFrequency,
		params.LowCutoff,
		params.HighCutoff,
		params.Gain,
		params.Order,
		step.CreatedAt)
	if err != nil {
		return nil, notFound(err, "processing params", profileID)
	}

	return step, nil
}

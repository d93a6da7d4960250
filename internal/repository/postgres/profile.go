package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RMahshie/signalbench/internal/repository"
	"github.com/RMahshie/signalbench/pkg/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

// PostgresRepository implements repository.Repository for PostgreSQL
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sql.DB) repository.Repository {
	return &PostgresRepository{db: db}
}

// CreateProfile inserts a new profile record together with its initial settings.
// Nothing is stored unless all three rows are written.
func (r *PostgresRepository) CreateProfile(ctx context.Context, profile *models.Profile, prefs models.UiPreferences, trigger models.TriggerConfig) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	profileID, err := uuid.Parse(profile.ID)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", profile.ID, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO profiles (id, session_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = tx.ExecContext(ctx, query,
		profile.ID,
		profile.SessionID,
		profile.Name,
		profile.CreatedAt,
		profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if err := upsertUiPreferences(ctx, tx, profileID, prefs); err != nil {
		return err
	}
	if err := upsertTriggerConfig(ctx, tx, profileID, trigger); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by ID
func (r *PostgresRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, session_id, name, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	var profile models.Profile
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.SessionID,
		&profile.Name,
		&profile.CreatedAt,
		&profile.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "profile", id)
	}

	return &profile, nil
}

// ListProfilesBySession retrieves the profiles of a session, newest first
func (r *PostgresRepository) ListProfilesBySession(ctx context.Context, sessionID string) ([]*models.Profile, error) {
	query := `
		SELECT id, session_id, name, created_at, updated_at
		FROM profiles
		WHERE session_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*models.Profile{}
	for rows.Next() {
		var profile models.Profile
		if err := rows.Scan(
			&profile.ID,
			&profile.SessionID,
			&profile.Name,
			&profile.CreatedAt,
			&profile.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, &profile)
	}

	return profiles, rows.Err()
}

// DeleteProfile removes a profile and, through cascading keys, all of its settings
func (r *PostgresRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("profile %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

// notFound maps missing rows and dangling profile references to repository.ErrNotFound
func notFound(err error, what string, id uuid.UUID) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, repository.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return fmt.Errorf("profile %s: %w", id, repository.ErrNotFound)
	}

	return fmt.Errorf("%s %s: %w", what, id, err)
}

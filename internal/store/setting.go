package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlListSettings = `SELECT key, value, updated_by, updated_at FROM settings ORDER BY key`

// ListSettings returns every stored setting
func (s *Store) ListSettings(ctx context.Context) ([]Setting, error) {
	var settings []Setting
	if err := s.db.SelectContext(ctx, &settings, sqlListSettings); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

const sqlGetSetting = `SELECT key, value, updated_by, updated_at FROM settings WHERE key = $1`

// GetSetting retrieves one setting by key
func (s *Store) GetSetting(ctx context.Context, key string) (Setting, error) {
	var setting Setting
	err := s.db.GetContext(ctx, &setting, sqlGetSetting, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Setting{}, ErrNotFound
		}
		return Setting{}, fmt.Errorf("failed to get setting: %w", err)
	}
	return setting, nil
}

const sqlUpsertSetting = `
INSERT INTO settings (key, value, updated_by)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = CURRENT_TIMESTAMP
RETURNING key, value, updated_by, updated_at
`

// UpsertSetting stores a setting value
func (s *Store) UpsertSetting(ctx context.Context, key string, value RawJSON, updatedBy *uuid.UUID) (Setting, error) {
	var setting Setting
	if err := s.db.GetContext(ctx, &setting, sqlUpsertSetting, key, value, updatedBy); err != nil {
		return Setting{}, fmt.Errorf("failed to upsert setting: %w", err)
	}
	return setting, nil
}

const sqlDeleteSetting = `DELETE FROM settings WHERE key = $1`

// DeleteSetting removes a stored value so the default applies again
func (s *Store) DeleteSetting(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, sqlDeleteSetting, key); err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	return nil
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/opencode-ai/atlas/internal/models"
)

// Settings repository errors.
var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrInvalidSetting  = errors.New("invalid setting")
)

// SettingsRepository is a durable key/value store for user preferences.
type SettingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the value stored under key.
// Returns ErrSettingNotFound if the key has never been written.
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	setting, err := r.GetSetting(ctx, key)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// GetSetting returns the full record stored under key.
func (r *SettingsRepository) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, value, updated_at FROM settings WHERE key = ?
	`, key)

	var setting models.Setting
	var updatedAt string
	if err := row.Scan(&setting.Key, &setting.Value, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to scan setting: %w", err)
	}
	if t, err := time.Parse(timeFormat, updatedAt); err == nil {
		setting.UpdatedAt = t
	}

	return &setting, nil
}

// Set writes value under key, replacing any previous value.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidSetting
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("failed to write setting: %w", err)
	}

	return nil
}

// Delete removes key. Returns ErrSettingNotFound if it was not present.
func (r *SettingsRepository) Delete(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSettingNotFound
	}
	return nil
}

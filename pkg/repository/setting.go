package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string for a missing key
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a setting value, retrying while the database is locked
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: err}
		}
		return nil
	}, errCritical)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// GetInt64 retrieves a numeric setting, zero for a missing or malformed value
func (r *SettingRepository) GetInt64(ctx context.Context, key string) (int64, error) {
	v, err := r.GetSetting(ctx, key)
	if err != nil || v == "" {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, nil //nolint:nilerr // malformed value treated as unset
	}
	return n, nil
}

// SetInt64 stores a numeric setting
func (r *SettingRepository) SetInt64(ctx context.Context, key string, v int64) error {
	return r.SetSetting(ctx, key, strconv.FormatInt(v, 10))
}

// DeleteSetting removes a setting, no error for a missing key
func (r *SettingRepository) DeleteSetting(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}

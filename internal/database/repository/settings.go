package repository

import (
	"context"
	"database/sql"
	"errors"
)

// SettingRepo is a small key/value table for card-level text.
type SettingRepo struct {
	db DBTX
}

func NewSettingRepo(db DBTX) *SettingRepo { return &SettingRepo{db: db} }

func (r *SettingRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO settings(key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value;
	`, key, value)
	return err
}

// Get returns the value and whether the key exists.
func (r *SettingRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

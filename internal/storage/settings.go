package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/misterclayt0n/loadout/internal/models"
)

const (
	keyTrainingInterval = "training_interval"
	keyDefaultRPE       = "default_rpe"
)

func (s *Storage) getSetting(key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRowContext(context.Background(),
		`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("Failed to read setting %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Storage) setSetting(key, value string) error {
	_, err := s.DB.ExecContext(context.Background(),
		`INSERT INTO settings (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("Failed to write setting %s: %w", key, err)
	}
	return nil
}

// GetSettings returns the persisted settings, falling back to defaults for
// anything never stored or unreadable.
func (s *Storage) GetSettings(defaults models.Settings) (models.Settings, error) {
	settings := defaults

	if v, ok, err := s.getSetting(keyTrainingInterval); err != nil {
		return settings, err
	} else if ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			settings.TrainingInterval = n
		}
	}

	if v, ok, err := s.getSetting(keyDefaultRPE); err != nil {
		return settings, err
	} else if ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			settings.DefaultRPE = f
		}
	}

	return settings, nil
}

func (s *Storage) SetTrainingInterval(days int) error {
	if days < 1 || days > models.MaxTrainingInterval {
		return fmt.Errorf("training interval must be between 1 and %d days, got %d",
			models.MaxTrainingInterval, days)
	}
	return s.setSetting(keyTrainingInterval, strconv.Itoa(days))
}

func (s *Storage) SetDefaultRPE(rpe float64) error {
	if rpe < 0 || rpe > 10 {
		return fmt.Errorf("default RPE must be between 0 and 10, got %g", rpe)
	}
	return s.setSetting(keyDefaultRPE, strconv.FormatFloat(rpe, 'f', -1, 64))
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/misterclayt0n/loadout/internal/utils"
	"github.com/sirupsen/logrus"
)

const entryColumns = `id, exercise_id, date, sets, reps, weight, rpe, distance, notes`

// AddHistoryEntry appends an entry to the exercise's history. The date is
// normalized to the start of its day.
func (s *Storage) AddHistoryEntry(exerciseID string, entry *models.HistoryEntry) error {
	ctx := context.Background()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	entry.Date = utils.StartOfDay(entry.Date)

	if _, err := s.GetExerciseByID(exerciseID); err != nil {
		return err
	}

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO history_entries (`+entryColumns+`, position)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
            (SELECT COALESCE(MAX(position), 0) + 1 FROM history_entries WHERE exercise_id = ?))`,
		entry.ID,
		exerciseID,
		entry.Date.Format(time.RFC3339),
		entry.Sets,
		entry.Reps,
		entry.Weight,
		entry.RPE,
		entry.Distance,
		entry.Notes,
		exerciseID,
	)
	if err != nil {
		return fmt.Errorf("Failed to add history entry: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"exercise_id": exerciseID,
		"date":        utils.FormatDay(entry.Date),
	}).Debug("history entry added")
	return nil
}

func scanEntries(rows *sql.Rows) (models.History, error) {
	defer rows.Close()

	history := models.History{}
	for rows.Next() {
		var e models.HistoryEntry
		var exerciseID, date string
		if err := rows.Scan(
			&e.ID,
			&exerciseID,
			&date,
			&e.Sets,
			&e.Reps,
			&e.Weight,
			&e.RPE,
			&e.Distance,
			&e.Notes,
		); err != nil {
			return nil, fmt.Errorf("Failed to scan history entry: %w", err)
		}
		e.Date, _ = time.Parse(time.RFC3339, date)
		history[exerciseID] = append(history[exerciseID], e)
	}
	return history, rows.Err()
}

// ListHistory returns every entry grouped by exercise id, in insertion order.
func (s *Storage) ListHistory() (models.History, error) {
	rows, err := s.DB.QueryContext(context.Background(),
		`SELECT `+entryColumns+` FROM history_entries ORDER BY exercise_id, position`)
	if err != nil {
		return nil, fmt.Errorf("Failed to list history: %w", err)
	}
	return scanEntries(rows)
}

// HistoryByExercise returns one exercise's entries in insertion order.
func (s *Storage) HistoryByExercise(exerciseID string) ([]models.HistoryEntry, error) {
	rows, err := s.DB.QueryContext(context.Background(),
		`SELECT `+entryColumns+` FROM history_entries WHERE exercise_id = ? ORDER BY position`,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to list history: %w", err)
	}
	history, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	return history[exerciseID], nil
}

// entryIDAt resolves a 1-based position in the exercise's history to an entry id.
func (s *Storage) entryIDAt(exerciseID string, index int) (string, error) {
	entries, err := s.HistoryByExercise(exerciseID)
	if err != nil {
		return "", err
	}
	if index < 1 || index > len(entries) {
		return "", fmt.Errorf("index %d of %d entries: %w", index, len(entries), ErrEntryIndex)
	}
	return entries[index-1].ID, nil
}

// UpdateHistoryEntry replaces the entry at the 1-based index, keeping its id.
func (s *Storage) UpdateHistoryEntry(exerciseID string, index int, entry models.HistoryEntry) error {
	id, err := s.entryIDAt(exerciseID, index)
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(context.Background(),
		`UPDATE history_entries SET
            date = ?, sets = ?, reps = ?, weight = ?, rpe = ?, distance = ?, notes = ?
        WHERE id = ?`,
		utils.StartOfDay(entry.Date).Format(time.RFC3339),
		entry.Sets,
		entry.Reps,
		entry.Weight,
		entry.RPE,
		entry.Distance,
		entry.Notes,
		id,
	)
	if err != nil {
		return fmt.Errorf("Failed to update history entry: %w", err)
	}
	return nil
}

// DeleteHistoryEntry removes the entry at the 1-based index. Later entries
// shift down by one.
func (s *Storage) DeleteHistoryEntry(exerciseID string, index int) error {
	id, err := s.entryIDAt(exerciseID, index)
	if err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(context.Background(),
		`DELETE FROM history_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("Failed to delete history entry: %w", err)
	}
	return nil
}

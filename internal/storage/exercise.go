package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/misterclayt0n/loadout/internal/utils"
	"github.com/sirupsen/logrus"
)

const exerciseColumns = `id, name, description, category, muscle_group, priority, is_selected,
        weekly_sets, target_rpe, distance, one_rep_max, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (*models.Exercise, error) {
	var ex models.Exercise
	var category, createdAt string
	var selected int

	err := row.Scan(
		&ex.ID,
		&ex.Name,
		&ex.Description,
		&category,
		&ex.MuscleGroup,
		&ex.Priority,
		&selected,
		&ex.WeeklySets,
		&ex.TargetRPE,
		&ex.Distance,
		&ex.OneRepMax,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	ex.Category = models.Category(category)
	ex.IsSelected = selected != 0
	ex.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &ex, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateExercise inserts a new exercise at the end of the list. Missing ids and
// creation times are filled in.
func (s *Storage) CreateExercise(ex *models.Exercise) error {
	ctx := context.Background()
	if ex.ID == "" {
		ex.ID = uuid.New().String()
	}
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = time.Now().UTC()
	}

	exists, err := s.ExerciseExists(ex.Name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("exercise %q already exists", ex.Name)
	}

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO exercises (`+exerciseColumns+`, position)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
            (SELECT COALESCE(MAX(position), 0) + 1 FROM exercises))`,
		exerciseArgs(*ex)...,
	)
	if err != nil {
		return fmt.Errorf("Failed to create exercise %q: %w", ex.Name, err)
	}
	logrus.WithField("exercise", ex.Name).Debug("exercise created")
	return nil
}

// UpsertExercise inserts the exercise or, when one with the same name exists,
// overwrites its definition while keeping its id, position and history.
func (s *Storage) UpsertExercise(ex *models.Exercise) error {
	return upsertExercise(context.Background(), s.DB, ex)
}

func upsertExercise(ctx context.Context, db execer, ex *models.Exercise) error {
	if ex.ID == "" {
		ex.ID = uuid.New().String()
	}
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = time.Now().UTC()
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO exercises (`+exerciseColumns+`, position)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
            (SELECT COALESCE(MAX(position), 0) + 1 FROM exercises))
        ON CONFLICT(name) DO UPDATE SET
            description = excluded.description,
            category = excluded.category,
            muscle_group = excluded.muscle_group,
            priority = excluded.priority,
            is_selected = excluded.is_selected,
            weekly_sets = excluded.weekly_sets,
            target_rpe = excluded.target_rpe,
            distance = excluded.distance`,
		exerciseArgs(*ex)...,
	)
	if err != nil {
		return fmt.Errorf("Failed to upsert exercise %q: %w", ex.Name, err)
	}
	return nil
}

func exerciseArgs(ex models.Exercise) []any {
	return []any{
		ex.ID,
		ex.Name,
		ex.Description,
		string(ex.Category),
		ex.MuscleGroup,
		ex.Priority,
		utils.BoolToInt(ex.IsSelected),
		ex.WeeklySets,
		ex.TargetRPE,
		ex.Distance,
		ex.OneRepMax,
		ex.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ListExercises returns every exercise in insertion order.
func (s *Storage) ListExercises() ([]models.Exercise, error) {
	rows, err := s.DB.QueryContext(context.Background(),
		`SELECT `+exerciseColumns+` FROM exercises ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("Failed to list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("Failed to scan exercise: %w", err)
		}
		exercises = append(exercises, *ex)
	}
	return exercises, rows.Err()
}

// GetExerciseByName looks an exercise up ignoring case.
func (s *Storage) GetExerciseByName(name string) (*models.Exercise, error) {
	row := s.DB.QueryRowContext(context.Background(),
		`SELECT `+exerciseColumns+` FROM exercises WHERE name = ? COLLATE NOCASE`,
		strings.TrimSpace(name),
	)
	ex, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("exercise %q: %w", name, ErrNotFound)
	}
	return ex, err
}

func (s *Storage) GetExerciseByID(id string) (*models.Exercise, error) {
	row := s.DB.QueryRowContext(context.Background(),
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = ?`,
		id,
	)
	ex, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}
	return ex, err
}

func (s *Storage) ExerciseExists(name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM exercises WHERE name = ? COLLATE NOCASE)`,
		strings.TrimSpace(name),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("Failed to check exercise %q: %w", name, err)
	}
	return exists, nil
}

// UpdateExercise overwrites every mutable field of the exercise with the given id.
func (s *Storage) UpdateExercise(ex models.Exercise) error {
	return updateExercise(context.Background(), s.DB, ex)
}

func updateExercise(ctx context.Context, db execer, ex models.Exercise) error {
	res, err := db.ExecContext(ctx,
		`UPDATE exercises SET
            name = ?, description = ?, category = ?, muscle_group = ?, priority = ?,
            is_selected = ?, weekly_sets = ?, target_rpe = ?, distance = ?, one_rep_max = ?
        WHERE id = ?`,
		ex.Name,
		ex.Description,
		string(ex.Category),
		ex.MuscleGroup,
		ex.Priority,
		utils.BoolToInt(ex.IsSelected),
		ex.WeeklySets,
		ex.TargetRPE,
		ex.Distance,
		ex.OneRepMax,
		ex.ID,
	)
	if err != nil {
		return fmt.Errorf("Failed to update exercise %q: %w", ex.Name, err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("exercise %s: %w", ex.ID, ErrNotFound)
	}
	return nil
}

// SaveExercises writes the allocator output back in a single transaction.
func (s *Storage) SaveExercises(exercises []models.Exercise) error {
	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ex := range exercises {
		if err := updateExercise(ctx, tx, ex); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit exercises: %w", err)
	}
	logrus.WithField("count", len(exercises)).Debug("exercises saved")
	return nil
}

// ImportExercises upserts every exercise in one transaction.
func (s *Storage) ImportExercises(exercises []models.Exercise) error {
	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range exercises {
		if err := upsertExercise(ctx, tx, &exercises[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteExercise removes the exercise and its whole history.
func (s *Storage) DeleteExercise(id string) error {
	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM history_entries WHERE exercise_id = ?`, id); err != nil {
		return fmt.Errorf("Failed to delete history: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Failed to delete exercise: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}

	return tx.Commit()
}

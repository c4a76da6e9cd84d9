package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/Zel143/fittrack/internal/models"
)

// EnsureExercise returns the catalog id for the named exercise, creating the
// entry if it does not exist yet. Workout logs store catalog ids only, so
// callers logging "bench press" by name go through here first.
func (s *Store) EnsureExercise(ctx context.Context, name string, muscleGroup *string) (int, error) {
	if name == "" {
		return 0, &ValidationError{Field: "exercise_name", Reason: "required"}
	}

	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	// The no-op DO UPDATE makes RETURNING yield the id on the conflict path too.
	var id int
	err = conn.QueryRowxContext(ctx,
		`INSERT INTO exercises (exercise_name, muscle_group) VALUES (?, ?)
		 ON CONFLICT (exercise_name) DO UPDATE SET exercise_name = excluded.exercise_name
		 RETURNING exercise_id`,
		name, muscleGroup).Scan(&id)
	if err != nil {
		return 0, &StorageError{Op: "upsert exercises", Err: err}
	}
	return id, nil
}

func (s *Store) GetExercise(ctx context.Context, id int) (*models.Exercise, error) {
	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var out []models.Exercise
	err = conn.SelectContext(ctx, &out,
		`SELECT exercise_id, exercise_name, muscle_group, exercise_type FROM exercises WHERE exercise_id = ?`, id)
	if err != nil {
		return nil, &StorageError{Op: "select exercises", Err: err}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func (s *Store) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	out := []models.Exercise{}
	err = conn.SelectContext(ctx, &out,
		`SELECT exercise_id, exercise_name, muscle_group, exercise_type FROM exercises ORDER BY exercise_name`)
	if err != nil {
		return nil, &StorageError{Op: "select exercises", Err: err}
	}
	return out, nil
}

// DeleteExercise removes a catalog entry. The workout_log foreign key is
// RESTRICT, so an entry still referenced by logs fails with a StorageError;
// IsForeignKeyViolation identifies that case for the caller.
func (s *Store) DeleteExercise(ctx context.Context, id int) (bool, error) {
	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, `DELETE FROM exercises WHERE exercise_id = ?`, id)
	if err != nil {
		return false, &StorageError{Op: "delete exercises", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &StorageError{Op: "delete exercises", Err: err}
	}
	if n > 0 {
		s.log.Debug("exercise deleted", zap.Int("id", id))
	}
	return n > 0, nil
}

package store

import (
	"context"

	"github.com/Zel143/fittrack/internal/models"
)

var workoutLogTable = table[models.WorkoutLog]{
	name:        "workout_log",
	idColumn:    "log_id",
	ownerColumn: "user_id",
	dateColumn:  "date",
	columns:     "log_id, user_id, exercise_id, sets, reps, weight_used, duration_minutes, distance_km, date",
	insertSQL: `INSERT INTO workout_log (user_id, exercise_id, sets, reps, weight_used, duration_minutes, distance_km, date)
	            VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING log_id`,
	insertArgs: func(l *models.WorkoutLog) []any {
		return []any{l.UserID, l.ExerciseID, l.Sets, l.Reps, l.WeightUsed, l.DurationMinutes, l.DistanceKm, l.Date}
	},
	setID: func(l *models.WorkoutLog, id int) { l.ID = id },
	validate: func(l *models.WorkoutLog) error {
		if l.UserID <= 0 {
			return &ValidationError{Field: "user_id", Reason: "required"}
		}
		if l.ExerciseID <= 0 {
			return &ValidationError{Field: "exercise_id", Reason: "required"}
		}
		if err := nonNegativeInt("sets", l.Sets); err != nil {
			return err
		}
		if err := nonNegativeInt("reps", l.Reps); err != nil {
			return err
		}
		if err := nonNegative("weight_used", l.WeightUsed); err != nil {
			return err
		}
		if err := nonNegative("duration_minutes", l.DurationMinutes); err != nil {
			return err
		}
		if err := nonNegative("distance_km", l.DistanceKm); err != nil {
			return err
		}
		return validDate("date", l.Date)
	},
}

func (s *Store) LogWorkout(ctx context.Context, l *models.WorkoutLog) error {
	return create(ctx, s, workoutLogTable, l)
}

func (s *Store) ListWorkoutLogs(ctx context.Context, userID int) ([]models.WorkoutLog, error) {
	return listByOwner(ctx, s, workoutLogTable, userID, "")
}

// ListWorkoutLogsOn restricts the listing to one day.
func (s *Store) ListWorkoutLogsOn(ctx context.Context, userID int, date string) ([]models.WorkoutLog, error) {
	if err := validDate("date", date); err != nil {
		return nil, err
	}
	return listByOwner(ctx, s, workoutLogTable, userID, date)
}

func (s *Store) DeleteWorkoutLog(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, s, workoutLogTable, id)
}

package store

import (
	"context"

	"github.com/Zel143/fittrack/internal/models"
)

var planTable = table[models.WorkoutPlan]{
	name:        "workout_plans",
	idColumn:    "plan_id",
	ownerColumn: "user_id",
	dateColumn:  "created_at",
	columns:     "plan_id, user_id, plan_name, description, difficulty, duration_weeks, created_at",
	insertSQL: `INSERT INTO workout_plans (user_id, plan_name, description, difficulty, duration_weeks)
	            VALUES (?, ?, ?, ?, ?) RETURNING plan_id`,
	insertArgs: func(p *models.WorkoutPlan) []any {
		return []any{p.UserID, p.PlanName, p.Description, p.Difficulty, p.DurationWeeks}
	},
	setID: func(p *models.WorkoutPlan, id int) { p.ID = id },
	validate: func(p *models.WorkoutPlan) error {
		if p.UserID <= 0 {
			return &ValidationError{Field: "user_id", Reason: "required"}
		}
		if p.PlanName == "" {
			return &ValidationError{Field: "plan_name", Reason: "required"}
		}
		return nonNegativeInt("duration_weeks", p.DurationWeeks)
	},
}

// plan_exercises rows are owned by a plan, not a user; deleting the plan
// cascades them away.
var planExerciseTable = table[models.PlanExercise]{
	name:        "plan_exercises",
	idColumn:    "plan_exercise_id",
	ownerColumn: "plan_id",
	dateColumn:  "plan_exercise_id", // no natural date; insertion order stands in
	columns:     "plan_exercise_id, plan_id, exercise_name, muscle_group, sets, reps, duration, notes, day_of_week",
	insertSQL: `INSERT INTO plan_exercises (plan_id, exercise_name, muscle_group, sets, reps, duration, notes, day_of_week)
	            VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING plan_exercise_id`,
	insertArgs: func(e *models.PlanExercise) []any {
		return []any{e.PlanID, e.ExerciseName, e.MuscleGroup, e.Sets, e.Reps, e.Duration, e.Notes, e.DayOfWeek}
	},
	setID: func(e *models.PlanExercise, id int) { e.ID = id },
	validate: func(e *models.PlanExercise) error {
		if e.PlanID <= 0 {
			return &ValidationError{Field: "plan_id", Reason: "required"}
		}
		if e.ExerciseName == "" {
			return &ValidationError{Field: "exercise_name", Reason: "required"}
		}
		if err := nonNegativeInt("sets", e.Sets); err != nil {
			return err
		}
		if err := nonNegativeInt("reps", e.Reps); err != nil {
			return err
		}
		return nonNegativeInt("duration", e.Duration)
	},
}

func (s *Store) CreatePlan(ctx context.Context, p *models.WorkoutPlan) error {
	return create(ctx, s, planTable, p)
}

func (s *Store) ListPlans(ctx context.Context, userID int) ([]models.WorkoutPlan, error) {
	return listByOwner(ctx, s, planTable, userID, "")
}

func (s *Store) DeletePlan(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, s, planTable, id)
}

func (s *Store) AddPlanExercise(ctx context.Context, e *models.PlanExercise) error {
	return create(ctx, s, planExerciseTable, e)
}

func (s *Store) ListPlanExercises(ctx context.Context, planID int) ([]models.PlanExercise, error) {
	return listByOwner(ctx, s, planExerciseTable, planID, "")
}

func (s *Store) DeletePlanExercise(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, s, planExerciseTable, id)
}

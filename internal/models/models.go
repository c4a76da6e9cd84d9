package models

// Dates are stored and exchanged as YYYY-MM-DD strings; timestamps come back
// from SQLite as text and are kept as-is.

type User struct {
	ID           int      `db:"user_id" json:"id"`
	Username     string   `db:"username" json:"username"`
	Email        string   `db:"email" json:"email"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Age          *int     `db:"age" json:"age,omitempty"`
	Gender       *string  `db:"gender" json:"gender,omitempty"`
	Height       *float64 `db:"height" json:"height,omitempty"`
	Weight       *float64 `db:"weight" json:"weight,omitempty"`
	FitnessLevel *string  `db:"fitness_level" json:"fitness_level,omitempty"`
	CreatedAt    string   `db:"created_at" json:"created_at"`
}

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusAbandoned = "abandoned"
)

type Goal struct {
	ID          int      `db:"goal_id" json:"id"`
	UserID      int      `db:"user_id" json:"user_id"`
	GoalType    string   `db:"goal_type" json:"goal_type"`
	TargetValue *float64 `db:"target_value" json:"target_value,omitempty"`
	TargetUnit  *string  `db:"target_unit" json:"target_unit,omitempty"`
	TargetDate  *string  `db:"target_date" json:"target_date,omitempty"`
	CreatedAt   string   `db:"created_at" json:"created_at"`
	Status      string   `db:"status" json:"status"`
}

type WorkoutPlan struct {
	ID            int     `db:"plan_id" json:"id"`
	UserID        int     `db:"user_id" json:"user_id"`
	PlanName      string  `db:"plan_name" json:"plan_name"`
	Description   *string `db:"description" json:"description,omitempty"`
	Difficulty    *string `db:"difficulty" json:"difficulty,omitempty"`
	DurationWeeks *int    `db:"duration_weeks" json:"duration_weeks,omitempty"`
	CreatedAt     string  `db:"created_at" json:"created_at"`
}

type PlanExercise struct {
	ID           int     `db:"plan_exercise_id" json:"id"`
	PlanID       int     `db:"plan_id" json:"plan_id"`
	ExerciseName string  `db:"exercise_name" json:"exercise_name"`
	MuscleGroup  *string `db:"muscle_group" json:"muscle_group,omitempty"`
	Sets         *int    `db:"sets" json:"sets,omitempty"`
	Reps         *int    `db:"reps" json:"reps,omitempty"`
	Duration     *int    `db:"duration" json:"duration,omitempty"`
	Notes        *string `db:"notes" json:"notes,omitempty"`
	DayOfWeek    *int    `db:"day_of_week" json:"day_of_week,omitempty"`
}

type Exercise struct {
	ID           int     `db:"exercise_id" json:"id"`
	ExerciseName string  `db:"exercise_name" json:"exercise_name"`
	MuscleGroup  *string `db:"muscle_group" json:"muscle_group,omitempty"`
	ExerciseType string  `db:"exercise_type" json:"exercise_type"`
}

type WorkoutLog struct {
	ID              int      `db:"log_id" json:"id"`
	UserID          int      `db:"user_id" json:"user_id"`
	ExerciseID      int      `db:"exercise_id" json:"exercise_id"`
	Sets            *int     `db:"sets" json:"sets,omitempty"`
	Reps            *int     `db:"reps" json:"reps,omitempty"`
	WeightUsed      *float64 `db:"weight_used" json:"weight_used,omitempty"`
	DurationMinutes *float64 `db:"duration_minutes" json:"duration_minutes,omitempty"`
	DistanceKm      *float64 `db:"distance_km" json:"distance_km,omitempty"`
	Date            string   `db:"date" json:"date"`
}

type WeightEntry struct {
	ID     int     `db:"history_id" json:"id"`
	UserID int     `db:"user_id" json:"user_id"`
	Weight float64 `db:"weight" json:"weight"`
	Date   string  `db:"date" json:"date"`
}

type FoodItem struct {
	ID              int      `db:"food_id" json:"id"`
	FoodName        string   `db:"food_name" json:"food_name"`
	ServingSizeG    *float64 `db:"serving_size_g" json:"serving_size_g,omitempty"`
	Calories        *float64 `db:"calories" json:"calories,omitempty"`
	Protein         *float64 `db:"protein" json:"protein,omitempty"`
	Carbs           *float64 `db:"carbs" json:"carbs,omitempty"`
	Fats            *float64 `db:"fats" json:"fats,omitempty"`
	CreatedByUserID int      `db:"created_by_user_id" json:"created_by_user_id"`
}

type FoodLog struct {
	ID         int      `db:"food_log_id" json:"id"`
	UserID     int      `db:"user_id" json:"user_id"`
	FoodItemID *int     `db:"food_library_id" json:"food_library_id,omitempty"`
	FoodName   string   `db:"food_name" json:"food_name"`
	Calories   int      `db:"calories" json:"calories"`
	Protein    *float64 `db:"protein" json:"protein,omitempty"`
	Carbs      *float64 `db:"carbs" json:"carbs,omitempty"`
	Fats       *float64 `db:"fats" json:"fats,omitempty"`
	Date       string   `db:"date" json:"date"`
}

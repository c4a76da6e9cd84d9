package db

import (
	"context"
)

// schema lists every table in dependency order: tables with foreign keys come
// after the tables they reference. All statements are IF NOT EXISTS, so
// EnsureSchema is safe to run on every start.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    age INTEGER,
    gender TEXT,
    height REAL,
    weight REAL,
    fitness_level TEXT,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS goals (
    goal_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    goal_type TEXT NOT NULL,
    target_value REAL,
    target_unit TEXT,
    target_date TEXT,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    status TEXT DEFAULT 'active'
);

CREATE TABLE IF NOT EXISTS workout_plans (
    plan_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    plan_name TEXT NOT NULL,
    description TEXT,
    difficulty TEXT,
    duration_weeks INTEGER,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS plan_exercises (
    plan_exercise_id INTEGER PRIMARY KEY AUTOINCREMENT,
    plan_id INTEGER NOT NULL REFERENCES workout_plans(plan_id) ON DELETE CASCADE,
    exercise_name TEXT NOT NULL,
    muscle_group TEXT,
    sets INTEGER,
    reps INTEGER,
    duration INTEGER,
    notes TEXT,
    day_of_week INTEGER
);

CREATE TABLE IF NOT EXISTS exercises (
    exercise_id INTEGER PRIMARY KEY AUTOINCREMENT,
    exercise_name TEXT NOT NULL UNIQUE,
    muscle_group TEXT,
    exercise_type TEXT DEFAULT 'strength' NOT NULL
);

CREATE TABLE IF NOT EXISTS workout_log (
    log_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    exercise_id INTEGER NOT NULL REFERENCES exercises(exercise_id) ON DELETE RESTRICT,
    sets INTEGER,
    reps INTEGER,
    weight_used REAL,
    duration_minutes REAL,
    distance_km REAL,
    date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS weight_history (
    history_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    weight REAL NOT NULL,
    date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS food_library (
    food_id INTEGER PRIMARY KEY AUTOINCREMENT,
    food_name TEXT NOT NULL,
    serving_size_g REAL,
    calories REAL,
    protein REAL,
    carbs REAL,
    fats REAL,
    created_by_user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS food_log (
    food_log_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    food_library_id INTEGER REFERENCES food_library(food_id) ON DELETE SET NULL,
    food_name TEXT NOT NULL,
    calories INTEGER NOT NULL,
    protein REAL,
    carbs REAL,
    fats REAL,
    date TEXT NOT NULL
);
`

// EnsureSchema creates every table if absent. Any failure is a SchemaError;
// the application must not proceed on a partial schema.
func EnsureSchema(ctx context.Context, p *Provider) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}

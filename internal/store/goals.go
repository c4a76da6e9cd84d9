package store

import (
	"context"

	"github.com/Zel143/fittrack/internal/models"
)

var goalTable = table[models.Goal]{
	name:        "goals",
	idColumn:    "goal_id",
	ownerColumn: "user_id",
	dateColumn:  "created_at",
	columns:     "goal_id, user_id, goal_type, target_value, target_unit, target_date, created_at, status",
	insertSQL: `INSERT INTO goals (user_id, goal_type, target_value, target_unit, target_date, status)
	            VALUES (?, ?, ?, ?, ?, ?) RETURNING goal_id`,
	insertArgs: func(g *models.Goal) []any {
		return []any{g.UserID, g.GoalType, g.TargetValue, g.TargetUnit, g.TargetDate, g.Status}
	},
	setID:    func(g *models.Goal, id int) { g.ID = id },
	validate: validateGoal,
}

func validateGoal(g *models.Goal) error {
	if g.UserID <= 0 {
		return &ValidationError{Field: "user_id", Reason: "required"}
	}
	if g.GoalType == "" {
		return &ValidationError{Field: "goal_type", Reason: "required"}
	}
	if err := nonNegative("target_value", g.TargetValue); err != nil {
		return err
	}
	if g.TargetDate != nil {
		if err := validDate("target_date", *g.TargetDate); err != nil {
			return err
		}
	}
	if !validGoalStatus(g.Status) {
		return &ValidationError{Field: "status", Reason: "must be active, completed or abandoned"}
	}
	return nil
}

func validGoalStatus(status string) bool {
	switch status {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusAbandoned:
		return true
	}
	return false
}

// CreateGoal inserts the goal and writes the assigned id back into it.
// An empty status defaults to active.
func (s *Store) CreateGoal(ctx context.Context, g *models.Goal) error {
	if g.Status == "" {
		g.Status = models.GoalStatusActive
	}
	return create(ctx, s, goalTable, g)
}

func (s *Store) ListGoals(ctx context.Context, userID int) ([]models.Goal, error) {
	return listByOwner(ctx, s, goalTable, userID, "")
}

// UpdateGoalStatus moves a goal between active, completed and abandoned.
// Everything else about a goal is immutable once set.
func (s *Store) UpdateGoalStatus(ctx context.Context, goalID int, status string) (bool, error) {
	if !validGoalStatus(status) {
		return false, &ValidationError{Field: "status", Reason: "must be active, completed or abandoned"}
	}

	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, `UPDATE goals SET status = ? WHERE goal_id = ?`, status, goalID)
	if err != nil {
		return false, &StorageError{Op: "update goals", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &StorageError{Op: "update goals", Err: err}
	}
	return n > 0, nil
}

func (s *Store) DeleteGoal(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, s, goalTable, id)
}

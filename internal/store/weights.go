package store

import (
	"context"

	"github.com/Zel143/fittrack/internal/models"
)

var weightTable = table[models.WeightEntry]{
	name:        "weight_history",
	idColumn:    "history_id",
	ownerColumn: "user_id",
	dateColumn:  "date",
	columns:     "history_id, user_id, weight, date",
	insertSQL:   `INSERT INTO weight_history (user_id, weight, date) VALUES (?, ?, ?) RETURNING history_id`,
	insertArgs: func(e *models.WeightEntry) []any {
		return []any{e.UserID, e.Weight, e.Date}
	},
	setID: func(e *models.WeightEntry, id int) { e.ID = id },
	validate: func(e *models.WeightEntry) error {
		if e.UserID <= 0 {
			return &ValidationError{Field: "user_id", Reason: "required"}
		}
		if e.Weight <= 0 {
			return &ValidationError{Field: "weight", Reason: "must be positive"}
		}
		return validDate("date", e.Date)
	},
}

func (s *Store) AddWeightEntry(ctx context.Context, e *models.WeightEntry) error {
	return create(ctx, s, weightTable, e)
}

// ListWeightHistory returns the account's entries newest-first; the most
// recent entry is the first element, which progress views rely on.
func (s *Store) ListWeightHistory(ctx context.Context, userID int) ([]models.WeightEntry, error) {
	return listByOwner(ctx, s, weightTable, userID, "")
}

func (s *Store) DeleteWeightEntry(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, s, weightTable, id)
}

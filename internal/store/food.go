package store

import (
	"context"

	"github.com/Zel143/fittrack/internal/models"
)

var foodItemTable = table[models.FoodItem]{
	name:        "food_library",
	idColumn:    "food_id",
	ownerColumn: "created_by_user_id",
	dateColumn:  "food_id", // catalog entries have no date; insertion order stands in
	columns:     "food_id, food_name, serving_size_g, calories, protein, carbs, fats, created_by_user_id",
	insertSQL: `INSERT INTO food_library (food_name, serving_size_g, calories, protein, carbs, fats, created_by_user_id)
	            VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING food_id`,
	insertArgs: func(f *models.FoodItem) []any {
		return []any{f.FoodName, f.ServingSizeG, f.Calories, f.Protein, f.Carbs, f.Fats, f.CreatedByUserID}
	},
	setID: func(f *models.FoodItem, id int) { f.ID = id },
	validate: func(f *models.FoodItem) error {
		if f.CreatedByUserID <= 0 {
			return &ValidationError{Field: "created_by_user_id", Reason: "required"}
		}
		if f.FoodName == "" {
			return &ValidationError{Field: "food_name", Reason: "required"}
		}
		for _, c := range []struct {
			field string
			v     *float64
		}{
			{"serving_size_g", f.ServingSizeG},
			{"calories", f.Calories},
			{"protein", f.Protein},
			{"carbs", f.Carbs},
			{"fats", f.Fats},
		} {
			if err := nonNegative(c.field, c.v); err != nil {
				return err
			}
		}
		return nil
	},
}

var foodLogTable = table[models.FoodLog]{
	name:        "food_log",
	idColumn:    "food_log_id",
	ownerColumn: "user_id",
	dateColumn:  "date",
	columns:     "food_log_id, user_id, food_library_id, food_name, calories, protein, carbs, fats, date",
	insertSQL: `INSERT INTO food_log (user_id, food_library_id, food_name, calories, protein, carbs, fats, date)
	            VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING food_log_id`,
	insertArgs: func(l *models.FoodLog) []any {
		return []any{l.UserID, l.FoodItemID, l.FoodName, l.Calories, l.Protein, l.Carbs, l.Fats, l.Date}
	},
	setID: func(l *models.FoodLog, id int) { l.ID = id },
	validate: func(l *models.FoodLog) error {
		if l.UserID <= 0 {
			return &ValidationError{Field: "user_id", Reason: "required"}
		}
		if l.FoodName == "" {
			return &ValidationError{Field: "food_name", Reason: "required"}
		}
		if l.Calories < 0 {
			return &ValidationError{Field: "calories", Reason: "must not be negative"}
		}
		for _, c := range []struct {
			field string
			v     *float64
		}{
			{"protein", l.Protein},
			{"carbs", l.Carbs},
			{"fats", l.Fats},
		} {
			if err := nonNegative(c.field, c.v); err != nil {
				return err
			}
		}
		return validDate("date", l.Date)
	},
}

func (s *Store) CreateFoodItem(ctx context.Context, f *models.FoodItem) error {
	return create(ctx, s, foodItemTable, f)
}

func (s *Store) ListFoodItems(ctx context.Context, userID int) ([]models.FoodItem, error) {
	return listByOwner(ctx, s, foodItemTable, userID, "")
}

// DeleteFoodItem removes a library entry. Log rows that referenced it survive
// with their library link set to null.
func (s *Store) DeleteFoodItem(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, s, foodItemTable, id)
}

func (s *Store) LogFood(ctx context.Context, l *models.FoodLog) error {
	return create(ctx, s, foodLogTable, l)
}

// ListFoodLog returns the account's food entries newest-first. A non-empty
// onDate restricts to that day, which the daily intake view uses.
func (s *Store) ListFoodLog(ctx context.Context, userID int, onDate string) ([]models.FoodLog, error) {
	if onDate != "" {
		if err := validDate("date", onDate); err != nil {
			return nil, err
		}
	}
	return listByOwner(ctx, s, foodLogTable, userID, onDate)
}

func (s *Store) DeleteFoodLog(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, s, foodLogTable, id)
}

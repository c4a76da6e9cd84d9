package history

import (
	"context"
	"fmt"

	"github.com/Zel143/fittrack/internal/models"
	"github.com/Zel143/fittrack/internal/store"
)

// AddWeightCommand adds a weight entry; undo deletes the row it created.
type AddWeightCommand struct {
	Store *store.Store
	Entry models.WeightEntry
}

func (c *AddWeightCommand) Execute(ctx context.Context) error {
	return c.Store.AddWeightEntry(ctx, &c.Entry)
}

func (c *AddWeightCommand) Undo(ctx context.Context) error {
	_, err := c.Store.DeleteWeightEntry(ctx, c.Entry.ID)
	return err
}

func (c *AddWeightCommand) Description() string {
	return fmt.Sprintf("add weight entry %.1f on %s", c.Entry.Weight, c.Entry.Date)
}

// AddFoodLogCommand logs a food entry; undo deletes it.
type AddFoodLogCommand struct {
	Store *store.Store
	Entry models.FoodLog
}

func (c *AddFoodLogCommand) Execute(ctx context.Context) error {
	return c.Store.LogFood(ctx, &c.Entry)
}

func (c *AddFoodLogCommand) Undo(ctx context.Context) error {
	_, err := c.Store.DeleteFoodLog(ctx, c.Entry.ID)
	return err
}

func (c *AddFoodLogCommand) Description() string {
	return fmt.Sprintf("log food %q on %s", c.Entry.FoodName, c.Entry.Date)
}

// DeleteFoodLogCommand deletes a food entry; undo re-inserts the captured
// values, which assigns a fresh id.
type DeleteFoodLogCommand struct {
	Store *store.Store
	Entry models.FoodLog
}

func (c *DeleteFoodLogCommand) Execute(ctx context.Context) error {
	_, err := c.Store.DeleteFoodLog(ctx, c.Entry.ID)
	return err
}

func (c *DeleteFoodLogCommand) Undo(ctx context.Context) error {
	return c.Store.LogFood(ctx, &c.Entry)
}

func (c *DeleteFoodLogCommand) Description() string {
	return fmt.Sprintf("delete food %q on %s", c.Entry.FoodName, c.Entry.Date)
}

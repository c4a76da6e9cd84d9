package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zel143/fittrack/internal/models"
)

var (
	foodDate    string
	foodProtein float64
	foodCarbs   float64
	foodFats    float64
	foodLibrary int
	foodOnDate  string
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Track food intake",
}

var foodLogCmd = &cobra.Command{
	Use:   "log <name> <calories>",
	Short: "Log a food entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		calories, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[1])
		}
		entry := models.FoodLog{
			UserID:   userID,
			FoodName: args[0],
			Calories: calories,
			Date:     dateOrToday(foodDate),
		}
		if cmd.Flags().Changed("protein") {
			entry.Protein = &foodProtein
		}
		if cmd.Flags().Changed("carbs") {
			entry.Carbs = &foodCarbs
		}
		if cmd.Flags().Changed("fats") {
			entry.Fats = &foodFats
		}
		if foodLibrary > 0 {
			entry.FoodItemID = &foodLibrary
		}
		if err := st.LogFood(cmd.Context(), &entry); err != nil {
			return err
		}
		color.Green("✓ Logged %s (%d kcal) on %s (id %d)", entry.FoodName, entry.Calories, entry.Date, entry.ID)
		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show food log, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		entries, err := st.ListFoodLog(cmd.Context(), userID, foodOnDate)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%-6d %s  %-20s %5d kcal\n", e.ID, e.Date, e.FoodName, e.Calories)
		}
		if len(entries) == 0 {
			fmt.Println("no entries")
		}
		return nil
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		removed, err := st.DeleteFoodLog(cmd.Context(), id)
		if err != nil {
			return err
		}
		if removed {
			color.Yellow("✗ Deleted food entry %d", id)
		} else {
			fmt.Printf("food entry %d not found\n", id)
		}
		return nil
	},
}

func init() {
	foodLogCmd.Flags().StringVar(&foodDate, "date", "", "entry date (YYYY-MM-DD, default today)")
	foodLogCmd.Flags().Float64Var(&foodProtein, "protein", 0, "protein grams")
	foodLogCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "carb grams")
	foodLogCmd.Flags().Float64Var(&foodFats, "fats", 0, "fat grams")
	foodLogCmd.Flags().IntVar(&foodLibrary, "library", 0, "food library entry id")
	foodListCmd.Flags().StringVar(&foodOnDate, "date", "", "show a single day (YYYY-MM-DD)")
	foodCmd.AddCommand(foodLogCmd, foodListCmd, foodDeleteCmd)
	rootCmd.AddCommand(foodCmd)
}

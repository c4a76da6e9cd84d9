package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zel143/fittrack/internal/models"
	"github.com/Zel143/fittrack/internal/store"
)

var (
	workoutSets   int
	workoutReps   int
	workoutWeight float64
	workoutDate   string
	workoutMuscle string
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Track workouts",
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <exercise>",
	Short: "Log a workout set-group",
	Long: `Log a workout against a catalog exercise, created on first use.

Examples:
  fittrack workout log "bench press" --sets 3 --reps 8 --weight 60 --user 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		var muscle *string
		if workoutMuscle != "" {
			muscle = &workoutMuscle
		}
		exerciseID, err := st.EnsureExercise(cmd.Context(), args[0], muscle)
		if err != nil {
			return err
		}
		entry := models.WorkoutLog{
			UserID:     userID,
			ExerciseID: exerciseID,
			Date:       dateOrToday(workoutDate),
		}
		if cmd.Flags().Changed("sets") {
			entry.Sets = &workoutSets
		}
		if cmd.Flags().Changed("reps") {
			entry.Reps = &workoutReps
		}
		if cmd.Flags().Changed("weight") {
			entry.WeightUsed = &workoutWeight
		}
		if err := st.LogWorkout(cmd.Context(), &entry); err != nil {
			return err
		}
		color.Green("✓ Logged %s on %s (id %d)", args[0], entry.Date, entry.ID)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show workout logs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		logs, err := st.ListWorkoutLogs(cmd.Context(), userID)
		if err != nil {
			return err
		}
		for _, l := range logs {
			name := fmt.Sprintf("exercise %d", l.ExerciseID)
			if ex, err := st.GetExercise(cmd.Context(), l.ExerciseID); err == nil && ex != nil {
				name = ex.ExerciseName
			}
			fmt.Printf("%-6d %s  %-20s %sx%s @ %s\n", l.ID, l.Date, name,
				fmtIntPtr(l.Sets), fmtIntPtr(l.Reps), fmtFloatPtr(l.WeightUsed))
		}
		if len(logs) == 0 {
			fmt.Println("no workouts")
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		removed, err := st.DeleteWorkoutLog(cmd.Context(), id)
		if err != nil {
			return err
		}
		if removed {
			color.Yellow("✗ Deleted workout log %d", id)
		} else {
			fmt.Printf("workout log %d not found\n", id)
		}
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "forget-exercise <id>",
	Short: "Remove a catalog exercise with no remaining logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		removed, err := st.DeleteExercise(cmd.Context(), id)
		if err != nil {
			if store.IsForeignKeyViolation(err) {
				color.Red("✗ Exercise %d still has workout logs", id)
			}
			return err
		}
		if removed {
			color.Yellow("✗ Removed exercise %d from the catalog", id)
		} else {
			fmt.Printf("exercise %d not found\n", id)
		}
		return nil
	},
}

func fmtIntPtr(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func fmtFloatPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func init() {
	workoutLogCmd.Flags().IntVar(&workoutSets, "sets", 0, "number of sets")
	workoutLogCmd.Flags().IntVar(&workoutReps, "reps", 0, "reps per set")
	workoutLogCmd.Flags().Float64Var(&workoutWeight, "weight", 0, "weight used (kg)")
	workoutLogCmd.Flags().StringVar(&workoutDate, "date", "", "workout date (YYYY-MM-DD, default today)")
	workoutLogCmd.Flags().StringVar(&workoutMuscle, "muscle", "", "muscle group for a new catalog exercise")
	workoutCmd.AddCommand(workoutLogCmd, workoutListCmd, workoutDeleteCmd, exerciseDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}

package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zel143/fittrack/internal/models"
)

var (
	planDescription string
	planDifficulty  string
	planWeeks       int

	planExSets int
	planExReps int
	planExDay  int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage workout plans",
}

var planAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a workout plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		plan := models.WorkoutPlan{UserID: userID, PlanName: args[0]}
		if planDescription != "" {
			plan.Description = &planDescription
		}
		if planDifficulty != "" {
			plan.Difficulty = &planDifficulty
		}
		if cmd.Flags().Changed("weeks") {
			plan.DurationWeeks = &planWeeks
		}
		if err := st.CreatePlan(cmd.Context(), &plan); err != nil {
			return err
		}
		color.Green("✓ Plan %q created (id %d)", plan.PlanName, plan.ID)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show workout plans, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		plans, err := st.ListPlans(cmd.Context(), userID)
		if err != nil {
			return err
		}
		for _, p := range plans {
			weeks := "-"
			if p.DurationWeeks != nil {
				weeks = fmt.Sprintf("%d weeks", *p.DurationWeeks)
			}
			fmt.Printf("%-6d %-25s %s\n", p.ID, p.PlanName, weeks)
		}
		if len(plans) == 0 {
			fmt.Println("no plans")
		}
		return nil
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a plan and its exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		removed, err := st.DeletePlan(cmd.Context(), id)
		if err != nil {
			return err
		}
		if removed {
			color.Yellow("✗ Deleted plan %d", id)
		} else {
			fmt.Printf("plan %d not found\n", id)
		}
		return nil
	},
}

var planExerciseCmd = &cobra.Command{
	Use:   "exercise <plan-id> <name>",
	Short: "Add an exercise to a plan",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}
		ex := models.PlanExercise{PlanID: planID, ExerciseName: args[1]}
		if cmd.Flags().Changed("sets") {
			ex.Sets = &planExSets
		}
		if cmd.Flags().Changed("reps") {
			ex.Reps = &planExReps
		}
		if cmd.Flags().Changed("day") {
			ex.DayOfWeek = &planExDay
		}
		if err := st.AddPlanExercise(cmd.Context(), &ex); err != nil {
			return err
		}
		color.Green("✓ Added %s to plan %d (id %d)", ex.ExerciseName, planID, ex.ID)
		return nil
	},
}

var planExercisesCmd = &cobra.Command{
	Use:   "exercises <plan-id>",
	Short: "List a plan's exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}
		exercises, err := st.ListPlanExercises(cmd.Context(), planID)
		if err != nil {
			return err
		}
		for _, ex := range exercises {
			fmt.Printf("%-6d %-25s %sx%s\n", ex.ID, ex.ExerciseName, fmtIntPtr(ex.Sets), fmtIntPtr(ex.Reps))
		}
		if len(exercises) == 0 {
			fmt.Println("no exercises")
		}
		return nil
	},
}

func init() {
	planAddCmd.Flags().StringVar(&planDescription, "description", "", "plan description")
	planAddCmd.Flags().StringVar(&planDifficulty, "difficulty", "", "difficulty tier")
	planAddCmd.Flags().IntVar(&planWeeks, "weeks", 0, "duration in weeks")
	planExerciseCmd.Flags().IntVar(&planExSets, "sets", 0, "sets")
	planExerciseCmd.Flags().IntVar(&planExReps, "reps", 0, "reps")
	planExerciseCmd.Flags().IntVar(&planExDay, "day", 0, "day of week (1-7)")
	planCmd.AddCommand(planAddCmd, planListCmd, planDeleteCmd, planExerciseCmd, planExercisesCmd)
	rootCmd.AddCommand(planCmd)
}

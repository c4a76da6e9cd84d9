package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zel143/fittrack/internal/models"
)

var (
	goalValue float64
	goalUnit  string
	goalDate  string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Track fitness goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Create a goal",
	Long: `Create a goal of the given type, e.g. "weight_loss" or "run_distance".

Examples:
  fittrack goal add weight_loss --value 65 --unit kg --date 2026-12-31 --user 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		goal := models.Goal{UserID: userID, GoalType: args[0]}
		if cmd.Flags().Changed("value") {
			goal.TargetValue = &goalValue
		}
		if goalUnit != "" {
			goal.TargetUnit = &goalUnit
		}
		if goalDate != "" {
			goal.TargetDate = &goalDate
		}
		if err := st.CreateGoal(cmd.Context(), &goal); err != nil {
			return err
		}
		color.Green("✓ Goal created (id %d)", goal.ID)
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show goals, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		goals, err := st.ListGoals(cmd.Context(), userID)
		if err != nil {
			return err
		}
		for _, g := range goals {
			target := ""
			if g.TargetValue != nil {
				target = fmt.Sprintf("%.1f", *g.TargetValue)
				if g.TargetUnit != nil {
					target += " " + *g.TargetUnit
				}
			}
			fmt.Printf("%-6d %-15s %-12s %s\n", g.ID, g.GoalType, g.Status, target)
		}
		if len(goals) == 0 {
			fmt.Println("no goals")
		}
		return nil
	},
}

func goalStatusCmd(use, short, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id: %s", args[0])
			}
			updated, err := st.UpdateGoalStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			if !updated {
				return fmt.Errorf("goal %d not found", id)
			}
			color.Green("✓ Goal %d marked %s", id, status)
			return nil
		},
	}
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		removed, err := st.DeleteGoal(cmd.Context(), id)
		if err != nil {
			return err
		}
		if removed {
			color.Yellow("✗ Deleted goal %d", id)
		} else {
			fmt.Printf("goal %d not found\n", id)
		}
		return nil
	},
}

func init() {
	goalAddCmd.Flags().Float64Var(&goalValue, "value", 0, "target value")
	goalAddCmd.Flags().StringVar(&goalUnit, "unit", "", "target unit")
	goalAddCmd.Flags().StringVar(&goalDate, "date", "", "target date (YYYY-MM-DD)")
	goalCmd.AddCommand(
		goalAddCmd,
		goalListCmd,
		goalStatusCmd("complete", "Mark a goal completed", models.GoalStatusCompleted),
		goalStatusCmd("abandon", "Mark a goal abandoned", models.GoalStatusAbandoned),
		goalDeleteCmd,
	)
	rootCmd.AddCommand(goalCmd)
}

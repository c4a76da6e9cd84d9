package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zel143/fittrack/internal/models"
)

var weightDate string

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var weightAddCmd = &cobra.Command{
	Use:   "add <kg>",
	Short: "Log a weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}
		entry := models.WeightEntry{UserID: userID, Weight: value, Date: dateOrToday(weightDate)}
		if err := st.AddWeightEntry(cmd.Context(), &entry); err != nil {
			return err
		}
		color.Green("✓ Logged %.1f kg on %s (id %d)", entry.Weight, entry.Date, entry.ID)
		return nil
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show weight history, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		entries, err := st.ListWeightHistory(cmd.Context(), userID)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%-6d %s  %.1f kg\n", e.ID, e.Date, e.Weight)
		}
		if len(entries) == 0 {
			fmt.Println("no entries")
		}
		return nil
	},
}

var weightDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		removed, err := st.DeleteWeightEntry(cmd.Context(), id)
		if err != nil {
			return err
		}
		if removed {
			color.Yellow("✗ Deleted weight entry %d", id)
		} else {
			fmt.Printf("weight entry %d not found\n", id)
		}
		return nil
	},
}

func dateOrToday(d string) string {
	if d == "" {
		return time.Now().Format("2006-01-02")
	}
	return d
}

func init() {
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "entry date (YYYY-MM-DD, default today)")
	weightCmd.AddCommand(weightAddCmd, weightListCmd, weightDeleteCmd)
	rootCmd.AddCommand(weightCmd)
}

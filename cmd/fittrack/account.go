package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var accountYes bool

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the account itself",
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the account and everything it owns",
	Long: `Delete the account. Goals, plans, workout logs, weight history and the
food log owned by the account are removed with it. This cannot be undone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		if !accountYes {
			return fmt.Errorf("refusing to delete user %d without --yes", userID)
		}
		removed, err := st.DeleteUser(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("user %d not found", userID)
		}
		color.Yellow("✗ Deleted user %d and all owned data", userID)
		return nil
	},
}

func init() {
	accountDeleteCmd.Flags().BoolVar(&accountYes, "yes", false, "confirm deletion")
	accountCmd.AddCommand(accountDeleteCmd)
	rootCmd.AddCommand(accountCmd)
}
